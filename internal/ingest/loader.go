package ingest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"medusa_seed_v1_202608/internal/model"
)

// ==================== 列名约定 ====================

const (
	colHandle            = "Handle"
	colTitle             = "Title"
	colDescription       = "Description"
	colStatus            = "Status"
	colMedusaTitle       = "Medusa_Title"
	colMedusaDescription = "Medusa_Description"
	colMedusaCategories  = "Medusa_Categories"
	colMedusaImages      = "Medusa_Images"
	colProductOptions    = "Medusa_Product_Options"
	colVariantOptions    = "Medusa_Variant_Options"
	colVariantGrams      = "Variant Grams"
	colVariantTitle      = "Variant Title"
	colVariantSKU        = "Variant SKU"
)

// ==================== Loader ====================

// Loader 将平台导出的 CSV 流转换为建品入参列表
// CSV 每行对应一个变体，同一 handle 的行聚合为一个商品
// 每次 Load 调用持有独立的会话状态（商品累加器、SKU 集合），不支持并发复用
type Loader struct {
	categories      []model.Category
	shippingProfile model.ShippingProfile
	salesChannels   []model.SalesChannel
	logger          *zap.Logger
}

// NewLoader 创建 CSV 导入器
// categories 为已创建的分类列表（按名称精确匹配），salesChannels 不能为空
func NewLoader(
	categories []model.Category,
	shippingProfile model.ShippingProfile,
	salesChannels []model.SalesChannel,
	logger *zap.Logger,
) *Loader {
	return &Loader{
		categories:      categories,
		shippingProfile: shippingProfile,
		salesChannels:   salesChannels,
		logger:          logger,
	}
}

// LoadFile 从文件路径读取并导入
func (l *Loader) LoadFile(ctx context.Context, path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开 CSV 文件失败: %w", err)
	}
	defer f.Close()
	return l.Load(ctx, f)
}

// Load 单遍拉取式地消费 CSV 流，返回按 handle 首次出现顺序排列的商品列表
// 行级问题（handle 为空、JSON 非法、选项值越界）记警告后降级继续；
// 流级解析错误返回 *ParseError，整次导入作废
func (l *Loader) Load(ctx context.Context, r io.Reader) ([]model.Product, error) {
	// 前置条件：销售渠道列表必须非空，任何行读取之前校验
	if len(l.salesChannels) == 0 {
		return nil, ErrEmptySalesChannels
	}

	reader := csv.NewReader(r)
	// 导出文件常有行尾补列/缺列，列数差异不视为帧错误，缺失列按空串处理
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	s := &session{
		loader:   l,
		header:   headerIndex(header),
		products: make(map[string]*productDraft),
		skus:     newSKURegistry(),
	}

	line := 1 // 表头占第 1 行
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		line++

		s.processRow(row{header: s.header, record: record, line: line})
	}

	return s.finalize(), nil
}

// headerIndex 预计算列名到下标的映射，所有行复用
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// ==================== 行访问 ====================

type row struct {
	header map[string]int
	record []string
	line   int
}

// get 按列名取值，列不存在或本行缺列时返回空串
func (r row) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return r.record[i]
}

// ==================== 会话状态 ====================

// session 一次 Load 调用的私有状态
type session struct {
	loader   *Loader
	header   map[string]int
	products map[string]*productDraft
	order    []string // handle 首次出现顺序
	skus     *skuRegistry
}

// productDraft 商品累加器
// allowedValues 仅在逐行构建变体阶段使用，finalize 前即被丢弃
// （不属于 model.Product，自然不会出现在返回结果里）
type productDraft struct {
	product       model.Product
	allowedValues map[string][]string
}

// processRow 处理单行：行级问题只降级或跳过，绝不向上冒泡
func (s *session) processRow(r row) {
	handle := Slugify(r.get(colHandle))
	if handle == "" {
		s.loader.logger.Warn("跳过行：Handle 经 slug 化后为空",
			zap.Int("line", r.line),
			zap.String("raw_handle", r.get(colHandle)))
		return
	}

	draft, seen := s.products[handle]
	if !seen {
		draft = s.newProduct(r, handle)
		s.products[handle] = draft
		s.order = append(s.order, handle)
	}

	variant := s.buildVariant(r, draft, handle)
	draft.product.Variants = append(draft.product.Variants, variant)
}

// finalize 按首次出现顺序摊平为普通列表
func (s *session) finalize() []model.Product {
	out := make([]model.Product, 0, len(s.order))
	for _, handle := range s.order {
		out = append(out, s.products[handle].product)
	}
	return out
}

// ==================== 商品构建（首行） ====================

// optionDef Medusa_Product_Options 列的 JSON 形态
type optionDef struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func (s *session) newProduct(r row, handle string) *productDraft {
	options, allowed := s.parseProductOptions(r, handle)

	draft := &productDraft{
		product: model.Product{
			Title:             firstNonEmpty(r.get(colMedusaTitle), r.get(colTitle), "Missing Title"),
			Description:       firstNonEmpty(r.get(colMedusaDescription), r.get(colDescription), ""),
			Handle:            handle,
			Weight:            parseWeight(r.get(colVariantGrams)),
			Status:            parseStatus(r.get(colStatus)),
			CategoryIDs:       s.resolveCategories(r.get(colMedusaCategories)),
			Images:            parseImages(r.get(colMedusaImages)),
			Options:           options,
			ShippingProfileID: s.loader.shippingProfile.ID,
			Variants:          []model.Variant{},
			SalesChannels:     []model.SalesChannel{{ID: s.loader.salesChannels[0].ID}},
		},
		allowedValues: allowed,
	}
	return draft
}

// parseProductOptions 解析选项定义 JSON，同时构建允许值映射
// JSON 非法时记警告并返回空选项（该商品后续所有变体选项都只能回退为空串）
func (s *session) parseProductOptions(r row, handle string) ([]model.ProductOption, map[string][]string) {
	raw := r.get(colProductOptions)
	allowed := make(map[string][]string)
	if raw == "" {
		return nil, allowed
	}

	var defs []optionDef
	if err := json.Unmarshal([]byte(raw), &defs); err != nil {
		s.loader.logger.Warn("商品选项定义 JSON 非法，按无选项处理",
			zap.String("handle", handle),
			zap.String("field", colProductOptions),
			zap.String("raw", raw),
			zap.Error(err))
		return nil, allowed
	}

	options := make([]model.ProductOption, 0, len(defs))
	for _, def := range defs {
		title := strings.TrimSpace(def.Name)
		values := make([]string, 0, len(def.Values))
		for _, v := range def.Values {
			values = append(values, strings.TrimSpace(v))
		}
		allowed[title] = values
		options = append(options, model.ProductOption{Title: title, Values: values})
	}
	return options, allowed
}

// resolveCategories 逗号分隔的分类名 -> 分类 ID
// 按名称精确匹配（区分大小写），未命中的名称静默丢弃
func (s *session) resolveCategories(raw string) []string {
	if raw == "" {
		return []string{}
	}
	ids := []string{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		for _, cat := range s.loader.categories {
			if cat.Name == name {
				ids = append(ids, cat.ID)
				break
			}
		}
	}
	return ids
}

func parseImages(raw string) []model.Image {
	if raw == "" {
		return []model.Image{}
	}
	images := []model.Image{}
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		images = append(images, model.Image{URL: u})
	}
	return images
}

// parseStatus 状态映射，未识别的值（含空串）一律默认 published
// 注意：这里刻意保留源数据约定——不把未知状态当错误
func parseStatus(raw string) model.ProductStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active", "published":
		return model.ProductStatusPublished
	case "draft":
		return model.ProductStatusDraft
	default:
		return model.ProductStatusPublished
	}
}

// parseWeight 整数克重，解析失败按 0
func parseWeight(raw string) int {
	w, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return w
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ==================== 变体构建（每行） ====================

func (s *session) buildVariant(r row, draft *productDraft, handle string) model.Variant {
	rawOptions := s.parseVariantOptions(r, handle)

	// 按商品选项顺序逐一校验取值
	finalOptions := make(map[string]string, len(draft.product.Options))
	resolvedOrder := make([]string, 0, len(draft.product.Options))
	for _, opt := range draft.product.Options {
		value := s.resolveOptionValue(handle, opt.Title, rawOptions[opt.Title], draft.allowedValues[opt.Title])
		finalOptions[opt.Title] = value
		resolvedOrder = append(resolvedOrder, value)
	}

	return model.Variant{
		Title:   s.variantTitle(r, draft, resolvedOrder),
		SKU:     s.skus.Claim(r.get(colVariantSKU)),
		Options: finalOptions,
		Prices:  s.buildPrices(r),
	}
}

// parseVariantOptions 解析变体选项 JSON，非法时记警告并按空对象处理
func (s *session) parseVariantOptions(r row, handle string) map[string]string {
	raw := r.get(colVariantOptions)
	if raw == "" {
		return map[string]string{}
	}
	options := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		s.loader.logger.Warn("变体选项 JSON 非法，按空对象处理",
			zap.String("handle", handle),
			zap.String("field", colVariantOptions),
			zap.String("raw", raw),
			zap.Error(err))
		return map[string]string{}
	}
	return options
}

// resolveOptionValue 校验单个选项取值
// 原始值非空且在允许集内则采用；否则回退为允许集首个值，允许集为空时回退为空串
func (s *session) resolveOptionValue(handle, optionTitle, rawValue string, allowed []string) string {
	trimmed := strings.TrimSpace(rawValue)

	if trimmed != "" {
		for _, v := range allowed {
			if v == trimmed {
				return trimmed
			}
		}
		s.loader.logger.Warn("变体选项值不在允许集内，回退为首个允许值",
			zap.String("handle", handle),
			zap.String("option", optionTitle),
			zap.String("raw", trimmed),
			zap.Strings("allowed", allowed))
	} else {
		s.loader.logger.Warn("变体选项值缺失，回退为首个允许值",
			zap.String("handle", handle),
			zap.String("option", optionTitle))
	}

	if len(allowed) > 0 {
		return allowed[0]
	}
	return ""
}

// variantTitle 变体标题优先级：
// 显式 Variant Title 列 > 选项值按顺序以 " / " 拼接 > "Variant {本商品第 N 个}"
func (s *session) variantTitle(r row, draft *productDraft, resolved []string) string {
	if explicit := r.get(colVariantTitle); explicit != "" {
		return explicit
	}

	allEmpty := true
	for _, v := range resolved {
		if strings.TrimSpace(v) != "" {
			allEmpty = false
			break
		}
	}
	if len(resolved) == 0 || allEmpty {
		return fmt.Sprintf("Variant %d", len(draft.product.Variants)+1)
	}
	return strings.Join(resolved, " / ")
}

// buildPrices 四个固定币种列，缺失或无法解析的币种直接省略（不补零）
func (s *session) buildPrices(r row) []model.Price {
	prices := []model.Price{}
	for _, currency := range priceCurrencies {
		if amount, ok := parsePrice(r.get(currency)); ok {
			prices = append(prices, model.Price{Amount: amount, CurrencyCode: currency})
		}
	}
	return prices
}
