package medusa

import (
	"medusa_seed_v1_202608/internal/model"
)

// ==========================================
// DTO: Medusa Admin API 请求与响应结构
// ==========================================

// ==================== 店铺 ====================

// Store 店铺响应
// GET /admin/stores
type Store struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	DefaultSalesChannelID string `json:"default_sales_channel_id"`
}

type listStoresResp struct {
	Stores []Store `json:"stores"`
}

// StoreCurrency 店铺支持的币种
type StoreCurrency struct {
	CurrencyCode string `json:"currency_code"`
	IsDefault    bool   `json:"is_default,omitempty"`
}

// UpdateStoreReq 店铺更新请求
// POST /admin/stores/{id}
type UpdateStoreReq struct {
	SupportedCurrencies   []StoreCurrency `json:"supported_currencies,omitempty"`
	DefaultSalesChannelID string          `json:"default_sales_channel_id,omitempty"`
}

// ==================== 销售渠道 ====================

// SalesChannel 销售渠道响应
type SalesChannel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listSalesChannelsResp struct {
	SalesChannels []SalesChannel `json:"sales_channels"`
}

type salesChannelResp struct {
	SalesChannel SalesChannel `json:"sales_channel"`
}

// CreateSalesChannelReq 创建销售渠道请求
// POST /admin/sales-channels
type CreateSalesChannelReq struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ==================== 区域与税区 ====================

// CreateRegionReq 创建区域请求
// POST /admin/regions
type CreateRegionReq struct {
	Name             string   `json:"name"`
	CurrencyCode     string   `json:"currency_code"`
	Countries        []string `json:"countries"`
	PaymentProviders []string `json:"payment_providers"`
}

// Region 区域响应
type Region struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
}

type regionResp struct {
	Region Region `json:"region"`
}

type listRegionsResp struct {
	Regions []Region `json:"regions"`
}

// CreateTaxRegionReq 创建税区请求
// POST /admin/tax-regions
type CreateTaxRegionReq struct {
	CountryCode string `json:"country_code"`
	ProviderID  string `json:"provider_id"`
}

// TaxRegion 税区响应
type TaxRegion struct {
	ID          string `json:"id"`
	CountryCode string `json:"country_code"`
}

type taxRegionResp struct {
	TaxRegion TaxRegion `json:"tax_region"`
}

// ==================== 库存地点 ====================

// StockLocationAddress 库存地点地址
type StockLocationAddress struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	Address1    string `json:"address_1"`
}

// CreateStockLocationReq 创建库存地点请求
// POST /admin/stock-locations
type CreateStockLocationReq struct {
	Name    string               `json:"name"`
	Address StockLocationAddress `json:"address"`
}

// StockLocation 库存地点响应
type StockLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type stockLocationResp struct {
	StockLocation StockLocation `json:"stock_location"`
}

// ==================== 履约 ====================

// GeoZone 服务区域内的地理范围
type GeoZone struct {
	CountryCode string `json:"country_code"`
	Type        string `json:"type"`
}

// ServiceZoneReq 服务区域定义
type ServiceZoneReq struct {
	Name     string    `json:"name"`
	GeoZones []GeoZone `json:"geo_zones"`
}

// CreateFulfillmentSetReq 创建履约集合请求
// POST /admin/stock-locations/{id}/fulfillment-sets
type CreateFulfillmentSetReq struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	ServiceZones []ServiceZoneReq `json:"service_zones"`
}

// ServiceZone 服务区域响应
type ServiceZone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FulfillmentSet 履约集合响应
type FulfillmentSet struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ServiceZones []ServiceZone `json:"service_zones"`
}

type fulfillmentSetResp struct {
	FulfillmentSet FulfillmentSet `json:"fulfillment_set"`
}

// ==================== 运费模板与运费项 ====================

// ShippingProfile 运费模板响应
type ShippingProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type listShippingProfilesResp struct {
	ShippingProfiles []ShippingProfile `json:"shipping_profiles"`
}

type shippingProfileResp struct {
	ShippingProfile ShippingProfile `json:"shipping_profile"`
}

// CreateShippingProfileReq 创建运费模板请求
// POST /admin/shipping-profiles
type CreateShippingProfileReq struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ShippingOptionType 运费项展示信息
type ShippingOptionType struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

// ShippingOptionPrice 运费项价格（金额为主单位，与平台 pricing 模块约定一致）
type ShippingOptionPrice struct {
	CurrencyCode string `json:"currency_code"`
	Amount       int64  `json:"amount"`
}

// ShippingOptionRule 运费项可用性规则
type ShippingOptionRule struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
	Operator  string `json:"operator"`
}

// CreateShippingOptionReq 创建运费项请求
// POST /admin/shipping-options
type CreateShippingOptionReq struct {
	Name              string                `json:"name"`
	PriceType         string                `json:"price_type"`
	ProviderID        string                `json:"provider_id"`
	ServiceZoneID     string                `json:"service_zone_id"`
	ShippingProfileID string                `json:"shipping_profile_id"`
	Type              ShippingOptionType    `json:"type"`
	Prices            []ShippingOptionPrice `json:"prices"`
	Rules             []ShippingOptionRule  `json:"rules"`
}

// ShippingOption 运费项响应
type ShippingOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type shippingOptionResp struct {
	ShippingOption ShippingOption `json:"shipping_option"`
}

// ==================== API Key ====================

// CreateAPIKeyReq 创建 API Key 请求
// POST /admin/api-keys
type CreateAPIKeyReq struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	CreatedBy string `json:"created_by,omitempty"`
}

// APIKey API Key 响应
type APIKey struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Token string `json:"token"`
}

type apiKeyResp struct {
	APIKey APIKey `json:"api_key"`
}

// ==================== 商品分类 ====================

// CreateProductCategoryReq 创建商品分类请求
// POST /admin/product-categories
type CreateProductCategoryReq struct {
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
	Description string `json:"description,omitempty"`
}

// ProductCategory 商品分类响应
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productCategoryResp struct {
	ProductCategory ProductCategory `json:"product_category"`
}

type listProductCategoriesResp struct {
	ProductCategories []ProductCategory `json:"product_categories"`
}

// ==================== 商品 ====================

// createProductsBatchReq 批量建品请求
// POST /admin/products/batch
type createProductsBatchReq struct {
	Create []model.Product `json:"create"`
}

// CreatedProduct 批量建品响应中的单个商品
type CreatedProduct struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

type createProductsBatchResp struct {
	Created []CreatedProduct `json:"created"`
}

type listProductsResp struct {
	Products []CreatedProduct `json:"products"`
}

// ==================== 库存 ====================

// InventoryItem 库存条目响应
type InventoryItem struct {
	ID  string `json:"id"`
	SKU string `json:"sku"`
}

type listInventoryItemsResp struct {
	InventoryItems []InventoryItem `json:"inventory_items"`
}

// InventoryLevelInput 库存水位入参
type InventoryLevelInput struct {
	InventoryItemID string `json:"inventory_item_id"`
	LocationID      string `json:"location_id"`
	StockedQuantity int64  `json:"stocked_quantity"`
}

type createInventoryLevelsBatchReq struct {
	Create []InventoryLevelInput `json:"create"`
}

// ==================== 通用 ====================

// idListReq 关联增删通用请求体，如向库存地点挂销售渠道
type idListReq struct {
	Add []string `json:"add"`
}

// ErrorResp 平台通用错误响应
type ErrorResp struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
