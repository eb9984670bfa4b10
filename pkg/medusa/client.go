package medusa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"medusa_seed_v1_202608/internal/model"
)

// ==================== 客户端 ====================

// Config 客户端配置
type Config struct {
	BaseURL    string
	AdminToken string
	Timeout    time.Duration
	RetryCount int
}

// Client Medusa Admin API 客户端
// 全系统统一的平台请求入口：统一超时、重试与鉴权头
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient 创建客户端
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second // 批量建品可能比较慢，默认给 20s
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Authorization", "Bearer "+cfg.AdminToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "Medusa-Seed-Go/1.0")

	return &Client{http: httpClient, logger: logger}
}

// APIError 平台返回的非 2xx 响应
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("medusa: %s %s 返回 %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// do 发起请求并解码响应，out 为 nil 时丢弃响应体
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	c.logger.Debug("请求平台接口", zap.String("method", method), zap.String("path", path))

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("medusa: %s %s 请求失败: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &APIError{
			StatusCode: resp.StatusCode(),
			Method:     method,
			Path:       path,
			Message:    resp.String(),
		}
		var errResp ErrorResp
		if jsonErr := json.Unmarshal(resp.Body(), &errResp); jsonErr == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("medusa: %s %s 响应解码失败: %w", method, path, err)
	}
	return nil
}

// ==================== 店铺 ====================

// ListStores 列出店铺（新装实例只有一个默认店铺）
func (c *Client) ListStores(ctx context.Context) ([]Store, error) {
	var out listStoresResp
	if err := c.do(ctx, http.MethodGet, "/admin/stores", nil, &out); err != nil {
		return nil, err
	}
	return out.Stores, nil
}

// UpdateStore 更新店铺币种与默认销售渠道
func (c *Client) UpdateStore(ctx context.Context, storeID string, req UpdateStoreReq) error {
	return c.do(ctx, http.MethodPost, "/admin/stores/"+storeID, req, nil)
}

// ==================== 销售渠道 ====================

// ListSalesChannels 按名称查询销售渠道，name 为空时返回全部
func (c *Client) ListSalesChannels(ctx context.Context, name string) ([]SalesChannel, error) {
	path := "/admin/sales-channels?limit=1000"
	if name != "" {
		// 渠道名可能带空格，必须转义后才能进请求行
		path = "/admin/sales-channels?name=" + url.QueryEscape(name)
	}
	var out listSalesChannelsResp
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.SalesChannels, nil
}

// CreateSalesChannel 创建销售渠道
func (c *Client) CreateSalesChannel(ctx context.Context, req CreateSalesChannelReq) (*SalesChannel, error) {
	var out salesChannelResp
	if err := c.do(ctx, http.MethodPost, "/admin/sales-channels", req, &out); err != nil {
		return nil, err
	}
	return &out.SalesChannel, nil
}

// DeleteSalesChannel 删除销售渠道
func (c *Client) DeleteSalesChannel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/sales-channels/"+id, nil, nil)
}

// ==================== 区域与税区 ====================

// CreateRegion 创建区域
func (c *Client) CreateRegion(ctx context.Context, req CreateRegionReq) (*Region, error) {
	var out regionResp
	if err := c.do(ctx, http.MethodPost, "/admin/regions", req, &out); err != nil {
		return nil, err
	}
	return &out.Region, nil
}

// ListRegions 列出区域
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	var out listRegionsResp
	if err := c.do(ctx, http.MethodGet, "/admin/regions?limit=1000", nil, &out); err != nil {
		return nil, err
	}
	return out.Regions, nil
}

// DeleteRegion 删除区域
func (c *Client) DeleteRegion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/regions/"+id, nil, nil)
}

// CreateTaxRegion 创建税区
func (c *Client) CreateTaxRegion(ctx context.Context, req CreateTaxRegionReq) (*TaxRegion, error) {
	var out taxRegionResp
	if err := c.do(ctx, http.MethodPost, "/admin/tax-regions", req, &out); err != nil {
		return nil, err
	}
	return &out.TaxRegion, nil
}

// ==================== 库存地点与履约 ====================

// CreateStockLocation 创建库存地点
func (c *Client) CreateStockLocation(ctx context.Context, req CreateStockLocationReq) (*StockLocation, error) {
	var out stockLocationResp
	if err := c.do(ctx, http.MethodPost, "/admin/stock-locations", req, &out); err != nil {
		return nil, err
	}
	return &out.StockLocation, nil
}

// AddFulfillmentProvider 给库存地点挂履约服务商
func (c *Client) AddFulfillmentProvider(ctx context.Context, stockLocationID, providerID string) error {
	path := "/admin/stock-locations/" + stockLocationID + "/fulfillment-providers"
	return c.do(ctx, http.MethodPost, path, idListReq{Add: []string{providerID}}, nil)
}

// CreateFulfillmentSet 在库存地点下创建履约集合（含服务区域）
func (c *Client) CreateFulfillmentSet(ctx context.Context, stockLocationID string, req CreateFulfillmentSetReq) (*FulfillmentSet, error) {
	path := "/admin/stock-locations/" + stockLocationID + "/fulfillment-sets"
	var out fulfillmentSetResp
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out.FulfillmentSet, nil
}

// AddSalesChannelsToStockLocation 给库存地点挂销售渠道
func (c *Client) AddSalesChannelsToStockLocation(ctx context.Context, stockLocationID string, channelIDs []string) error {
	path := "/admin/stock-locations/" + stockLocationID + "/sales-channels"
	return c.do(ctx, http.MethodPost, path, idListReq{Add: channelIDs}, nil)
}

// ==================== 运费模板与运费项 ====================

// ListShippingProfiles 按类型查询运费模板，profileType 为空时返回全部
func (c *Client) ListShippingProfiles(ctx context.Context, profileType string) ([]ShippingProfile, error) {
	path := "/admin/shipping-profiles?limit=1000"
	if profileType != "" {
		path = "/admin/shipping-profiles?type=" + url.QueryEscape(profileType)
	}
	var out listShippingProfilesResp
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.ShippingProfiles, nil
}

// CreateShippingProfile 创建运费模板
func (c *Client) CreateShippingProfile(ctx context.Context, req CreateShippingProfileReq) (*ShippingProfile, error) {
	var out shippingProfileResp
	if err := c.do(ctx, http.MethodPost, "/admin/shipping-profiles", req, &out); err != nil {
		return nil, err
	}
	return &out.ShippingProfile, nil
}

// DeleteShippingProfile 删除运费模板
func (c *Client) DeleteShippingProfile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/shipping-profiles/"+id, nil, nil)
}

// CreateShippingOption 创建运费项
func (c *Client) CreateShippingOption(ctx context.Context, req CreateShippingOptionReq) (*ShippingOption, error) {
	var out shippingOptionResp
	if err := c.do(ctx, http.MethodPost, "/admin/shipping-options", req, &out); err != nil {
		return nil, err
	}
	return &out.ShippingOption, nil
}

// ==================== API Key ====================

// CreateAPIKey 创建可发布 API Key
func (c *Client) CreateAPIKey(ctx context.Context, req CreateAPIKeyReq) (*APIKey, error) {
	var out apiKeyResp
	if err := c.do(ctx, http.MethodPost, "/admin/api-keys", req, &out); err != nil {
		return nil, err
	}
	return &out.APIKey, nil
}

// AddSalesChannelsToAPIKey 给 API Key 挂销售渠道
func (c *Client) AddSalesChannelsToAPIKey(ctx context.Context, apiKeyID string, channelIDs []string) error {
	path := "/admin/api-keys/" + apiKeyID + "/sales-channels"
	return c.do(ctx, http.MethodPost, path, idListReq{Add: channelIDs}, nil)
}

// ==================== 商品分类 ====================

// CreateProductCategory 创建商品分类
func (c *Client) CreateProductCategory(ctx context.Context, req CreateProductCategoryReq) (*ProductCategory, error) {
	var out productCategoryResp
	if err := c.do(ctx, http.MethodPost, "/admin/product-categories", req, &out); err != nil {
		return nil, err
	}
	return &out.ProductCategory, nil
}

// ListProductCategories 列出商品分类
func (c *Client) ListProductCategories(ctx context.Context) ([]ProductCategory, error) {
	var out listProductCategoriesResp
	if err := c.do(ctx, http.MethodGet, "/admin/product-categories?limit=1000", nil, &out); err != nil {
		return nil, err
	}
	return out.ProductCategories, nil
}

// DeleteProductCategory 删除商品分类
func (c *Client) DeleteProductCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/product-categories/"+id, nil, nil)
}

// ==================== 商品 ====================

// CreateProductsBatch 批量建品
func (c *Client) CreateProductsBatch(ctx context.Context, products []model.Product) ([]CreatedProduct, error) {
	var out createProductsBatchResp
	req := createProductsBatchReq{Create: products}
	if err := c.do(ctx, http.MethodPost, "/admin/products/batch", req, &out); err != nil {
		return nil, err
	}
	return out.Created, nil
}

// ListProducts 列出商品（只取 id/handle）
func (c *Client) ListProducts(ctx context.Context) ([]CreatedProduct, error) {
	var out listProductsResp
	if err := c.do(ctx, http.MethodGet, "/admin/products?fields=id,handle&limit=1000", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// DeleteProduct 删除商品
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/products/"+id, nil, nil)
}

// ==================== 库存 ====================

// ListInventoryItems 列出库存条目
func (c *Client) ListInventoryItems(ctx context.Context) ([]InventoryItem, error) {
	var out listInventoryItemsResp
	if err := c.do(ctx, http.MethodGet, "/admin/inventory-items?limit=10000", nil, &out); err != nil {
		return nil, err
	}
	return out.InventoryItems, nil
}

// CreateInventoryLevelsBatch 批量写入库存水位
func (c *Client) CreateInventoryLevelsBatch(ctx context.Context, levels []InventoryLevelInput) error {
	req := createInventoryLevelsBatchReq{Create: levels}
	return c.do(ctx, http.MethodPost, "/admin/inventory-items/location-levels/batch", req, nil)
}
