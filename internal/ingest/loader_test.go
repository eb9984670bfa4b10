package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap"

	"medusa_seed_v1_202608/internal/model"
)

// ==================== 测试辅助 ====================

var testHeader = []string{
	"Handle", "Title", "Description", "Status",
	"Medusa_Title", "Medusa_Description", "Medusa_Categories", "Medusa_Images",
	"Medusa_Product_Options", "Medusa_Variant_Options",
	"Variant Grams", "Variant Title", "Variant SKU",
	"usd", "eur", "cad", "xof",
}

// testRow 按列名填值，未填的列为空串
func testRow(fields map[string]string) []string {
	record := make([]string, len(testHeader))
	for i, col := range testHeader {
		record[i] = fields[col]
	}
	return record
}

func buildCSV(t *testing.T, rows ...[]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(testHeader); err != nil {
		t.Fatalf("写表头失败: %v", err)
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			t.Fatalf("写数据行失败: %v", err)
		}
	}
	w.Flush()
	return buf.String()
}

func testLoader(categories []model.Category) *Loader {
	return NewLoader(
		categories,
		model.ShippingProfile{ID: "sp_1"},
		[]model.SalesChannel{{ID: "sc_1"}},
		zap.NewNop(),
	)
}

func load(t *testing.T, l *Loader, data string) []model.Product {
	t.Helper()
	products, err := l.Load(context.Background(), strings.NewReader(data))
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}
	return products
}

// ==================== 单元测试 ====================

func TestLoader_GroupsRowsByHandle(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle": "Cool Tee", "Title": "Cool Tee",
			"Medusa_Product_Options": `[{"name":"Size","values":["S","M"]}]`,
			"Medusa_Variant_Options": `{"Size":"S"}`,
			"Variant SKU":            "TEE-S",
		}),
		testRow(map[string]string{
			"Handle": "Other Thing", "Title": "Other Thing",
			"Variant SKU": "OTHER-1",
		}),
		testRow(map[string]string{
			"Handle": "cool-tee", "Title": "Cool Tee",
			"Medusa_Variant_Options": `{"Size":"M"}`,
			"Variant SKU":            "TEE-M",
		}),
	)

	products := load(t, testLoader(nil), data)

	if len(products) != 2 {
		t.Fatalf("期望 2 个商品, 得到 %d", len(products))
	}
	if products[0].Handle != "cool-tee" || products[1].Handle != "other-thing" {
		t.Errorf("商品应按 handle 首次出现顺序排列, 得到 %q %q", products[0].Handle, products[1].Handle)
	}
	if len(products[0].Variants) != 2 {
		t.Fatalf("cool-tee 期望 2 个变体, 得到 %d", len(products[0].Variants))
	}
	if products[0].Variants[0].Options["Size"] != "S" || products[0].Variants[1].Options["Size"] != "M" {
		t.Errorf("变体选项错误: %v / %v", products[0].Variants[0].Options, products[0].Variants[1].Options)
	}
}

func TestLoader_SlugifiesHandle(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{"Handle": "  Cool Tee!! ", "Title": "Cool Tee"}),
	)

	products := load(t, testLoader(nil), data)

	if len(products) != 1 {
		t.Fatalf("期望 1 个商品, 得到 %d", len(products))
	}
	if products[0].Handle != "cool-tee" {
		t.Errorf("Handle = %q, 期望 %q", products[0].Handle, "cool-tee")
	}
}

func TestLoader_SkipsEmptyHandle(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{"Handle": "!!!", "Title": "无效行"}),
		testRow(map[string]string{"Handle": "", "Title": "空行"}),
		testRow(map[string]string{"Handle": "keeper", "Title": "保留行"}),
	)

	products := load(t, testLoader(nil), data)

	if len(products) != 1 || products[0].Handle != "keeper" {
		t.Fatalf("只应保留 handle 合法的行, 得到 %+v", products)
	}
}

func TestLoader_TitleAndDescriptionFallback(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle": "a", "Medusa_Title": "定制标题", "Title": "原始标题",
			"Medusa_Description": "定制描述", "Description": "原始描述",
		}),
		testRow(map[string]string{"Handle": "b", "Title": "原始标题"}),
		testRow(map[string]string{"Handle": "c"}),
	)

	products := load(t, testLoader(nil), data)

	if products[0].Title != "定制标题" || products[0].Description != "定制描述" {
		t.Errorf("应优先取 Medusa 列: %q / %q", products[0].Title, products[0].Description)
	}
	if products[1].Title != "原始标题" {
		t.Errorf("Medusa 列为空时应回退原始列: %q", products[1].Title)
	}
	if products[2].Title != "Missing Title" {
		t.Errorf("两列都空时标题应为 Missing Title: %q", products[2].Title)
	}
	if products[2].Description != "" {
		t.Errorf("两列都空时描述应为空串: %q", products[2].Description)
	}
}

func TestLoader_StatusMapping(t *testing.T) {
	cases := []struct {
		raw  string
		want model.ProductStatus
	}{
		{"active", model.ProductStatusPublished},
		{"Active", model.ProductStatusPublished},
		{"published", model.ProductStatusPublished},
		{"draft", model.ProductStatusDraft},
		{"archived", model.ProductStatusPublished},
		{"", model.ProductStatusPublished},
	}

	for _, tc := range cases {
		data := buildCSV(t, testRow(map[string]string{"Handle": "p", "Status": tc.raw}))
		products := load(t, testLoader(nil), data)
		if products[0].Status != tc.want {
			t.Errorf("Status %q -> %q, 期望 %q", tc.raw, products[0].Status, tc.want)
		}
	}
}

func TestLoader_WeightParsing(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{"Handle": "a", "Variant Grams": "400"}),
		testRow(map[string]string{"Handle": "b", "Variant Grams": "400g"}),
		testRow(map[string]string{"Handle": "c"}),
	)

	products := load(t, testLoader(nil), data)

	if products[0].Weight != 400 {
		t.Errorf("整数克重解析错误: %d", products[0].Weight)
	}
	if products[1].Weight != 0 || products[2].Weight != 0 {
		t.Errorf("非法或缺失克重应为 0: %d / %d", products[1].Weight, products[2].Weight)
	}
}

func TestLoader_ResolvesCategoriesByExactName(t *testing.T) {
	categories := []model.Category{
		{ID: "cat_shirts", Name: "Shirts"},
		{ID: "cat_pants", Name: "Pants"},
	}
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle":            "p",
			"Medusa_Categories": "Shirts, Pants, Unknown, shirts",
		}),
	)

	products := load(t, testLoader(categories), data)

	got := products[0].CategoryIDs
	if len(got) != 2 || got[0] != "cat_shirts" || got[1] != "cat_pants" {
		t.Errorf("分类解析错误: %v", got)
	}
}

func TestLoader_ParsesImages(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle":        "p",
			"Medusa_Images": " https://a.png , https://b.png ,, ",
		}),
	)

	products := load(t, testLoader(nil), data)

	images := products[0].Images
	if len(images) != 2 || images[0].URL != "https://a.png" || images[1].URL != "https://b.png" {
		t.Errorf("图片解析错误: %v", images)
	}
}

func TestLoader_OptionValueFallback(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle":                 "p",
			"Medusa_Product_Options": `[{"name":"Size","values":["S","M","L"]}]`,
			"Medusa_Variant_Options": `{"Size":"XXL"}`,
			"Variant SKU":            "P-1",
		}),
		testRow(map[string]string{
			"Handle":      "p",
			"Variant SKU": "P-2",
		}),
		testRow(map[string]string{
			"Handle":                 "p",
			"Medusa_Variant_Options": `{"Size":"M"}`,
			"Variant SKU":            "P-3",
		}),
	)

	products := load(t, testLoader(nil), data)

	variants := products[0].Variants
	if variants[0].Options["Size"] != "S" {
		t.Errorf("越界取值应回退首个允许值: %q", variants[0].Options["Size"])
	}
	if variants[1].Options["Size"] != "S" {
		t.Errorf("缺失取值应回退首个允许值: %q", variants[1].Options["Size"])
	}
	if variants[2].Options["Size"] != "M" {
		t.Errorf("合法取值应原样采用: %q", variants[2].Options["Size"])
	}
}

func TestLoader_InvalidOptionJSON(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle":                 "p",
			"Medusa_Product_Options": `not-json`,
			"Medusa_Variant_Options": `also-not-json`,
			"Variant SKU":            "P-1",
		}),
	)

	products := load(t, testLoader(nil), data)

	if len(products) != 1 {
		t.Fatalf("JSON 非法不应导致整行丢弃, 得到 %d 个商品", len(products))
	}
	if len(products[0].Options) != 0 {
		t.Errorf("选项定义非法时应按无选项处理: %v", products[0].Options)
	}
	if len(products[0].Variants) != 1 {
		t.Fatalf("变体仍应建出, 得到 %d", len(products[0].Variants))
	}
	if len(products[0].Variants[0].Options) != 0 {
		t.Errorf("无选项时变体选项应为空: %v", products[0].Variants[0].Options)
	}
}

func TestLoader_VariantTitlePrecedence(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle":                 "p",
			"Medusa_Product_Options": `[{"name":"Size","values":["S","M"]},{"name":"Color","values":["Black"]}]`,
			"Medusa_Variant_Options": `{"Size":"S","Color":"Black"}`,
			"Variant Title":          "特别版",
			"Variant SKU":            "P-1",
		}),
		testRow(map[string]string{
			"Handle":                 "p",
			"Medusa_Variant_Options": `{"Size":"M","Color":"Black"}`,
			"Variant SKU":            "P-2",
		}),
		testRow(map[string]string{
			"Handle":      "q",
			"Variant SKU": "Q-1",
		}),
	)

	products := load(t, testLoader(nil), data)

	if products[0].Variants[0].Title != "特别版" {
		t.Errorf("显式变体标题应优先: %q", products[0].Variants[0].Title)
	}
	if products[0].Variants[1].Title != "M / Black" {
		t.Errorf("应按选项顺序以 / 拼接: %q", products[0].Variants[1].Title)
	}
	if products[1].Variants[0].Title != "Variant 1" {
		t.Errorf("无选项时应使用序号标题: %q", products[1].Variants[0].Title)
	}
}

func TestLoader_SKUDeduplication(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{"Handle": "a", "Variant SKU": "ABC"}),
		testRow(map[string]string{"Handle": "b", "Variant SKU": "ABC"}),
	)

	products := load(t, testLoader(nil), data)

	first := products[0].Variants[0].SKU
	second := products[1].Variants[0].SKU
	if first != "ABC" {
		t.Errorf("首个 SKU 应原样保留: %q", first)
	}
	if !regexp.MustCompile(`^ABC-[0-9a-z]{4}$`).MatchString(second) {
		t.Errorf("冲突 SKU 应带随机后缀: %q", second)
	}
}

func TestLoader_Prices(t *testing.T) {
	data := buildCSV(t,
		testRow(map[string]string{
			"Handle": "p", "Variant SKU": "P-1",
			"usd": "19.99", "eur": "0", "cad": "abc", "xof": "",
		}),
	)

	products := load(t, testLoader(nil), data)

	prices := products[0].Variants[0].Prices
	if len(prices) != 2 {
		t.Fatalf("期望 2 个价格, 得到 %v", prices)
	}
	if prices[0].CurrencyCode != "usd" || prices[0].Amount != 1999 {
		t.Errorf("usd 价格错误: %+v", prices[0])
	}
	if prices[1].CurrencyCode != "eur" || prices[1].Amount != 0 {
		t.Errorf("eur 零价应保留: %+v", prices[1])
	}
}

func TestLoader_AttachesSharedReferences(t *testing.T) {
	data := buildCSV(t, testRow(map[string]string{"Handle": "p"}))

	products := load(t, testLoader(nil), data)

	p := products[0]
	if p.ShippingProfileID != "sp_1" {
		t.Errorf("运费模板 ID 错误: %q", p.ShippingProfileID)
	}
	if len(p.SalesChannels) != 1 || p.SalesChannels[0].ID != "sc_1" {
		t.Errorf("销售渠道错误: %v", p.SalesChannels)
	}
}

func TestLoader_EmptySalesChannels(t *testing.T) {
	l := NewLoader(nil, model.ShippingProfile{ID: "sp_1"}, nil, zap.NewNop())

	_, err := l.Load(context.Background(), strings.NewReader("Handle\nfoo\n"))
	if !errors.Is(err, ErrEmptySalesChannels) {
		t.Fatalf("期望 ErrEmptySalesChannels, 得到 %v", err)
	}
}

func TestLoader_MalformedCSV(t *testing.T) {
	// 引号不闭合属于流级错误，整次导入作废
	data := "Handle,Title\n\"bad,row\ngood,row\n"

	_, err := testLoader(nil).Load(context.Background(), strings.NewReader(data))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("期望 *ParseError, 得到 %v", err)
	}
}

func TestLoader_EmptyInput(t *testing.T) {
	products := load(t, testLoader(nil), "")
	if len(products) != 0 {
		t.Errorf("空输入应返回空列表, 得到 %v", products)
	}
}

func TestLoader_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := buildCSV(t, testRow(map[string]string{"Handle": "p"}))
	_, err := testLoader(nil).Load(ctx, strings.NewReader(data))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("期望 context.Canceled, 得到 %v", err)
	}
}
