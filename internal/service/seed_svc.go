package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medusa_seed_v1_202608/internal/ingest"
	"medusa_seed_v1_202608/internal/model"
	"medusa_seed_v1_202608/pkg/medusa"
)

// ==================== 固定初始化数据 ====================

const (
	defaultSalesChannelName = "Default Sales Channel"
	defaultCurrencyCode     = "eur"
	paymentProviderID       = "pp_system_default"
	taxProviderID           = "tp_system"
	fulfillmentProviderID   = "manual_manual"
	publishableKeyTitle     = "Webshop"
	apiKeyCreatedBy         = "CodeByCisse"
	stockedQuantity         = 1_000_000
)

// 开站覆盖的国家
var seedCountries = []string{
	"gb", // 英国
	"de", // 德国
	"dk", // 丹麦
	"se", // 瑞典
	"fr", // 法国
	"es", // 西班牙
	"it", // 意大利
	"us", // 美国
	"ca", // 加拿大
	"ml", // 马里
	"ci", // 科特迪瓦
	"sn", // 塞内加尔
}

var supportedCurrencies = []medusa.StoreCurrency{
	{CurrencyCode: "eur", IsDefault: true},
	{CurrencyCode: "usd"},
	{CurrencyCode: "cad"},
	{CurrencyCode: "xof"}, // 西非法郎
}

var seedStockLocations = []medusa.CreateStockLocationReq{
	{Name: "European Warehouse", Address: medusa.StockLocationAddress{City: "Copenhagen", CountryCode: "DK"}},
	{Name: "US Warehouse", Address: medusa.StockLocationAddress{City: "New York", CountryCode: "US"}},
	{Name: "Canada Warehouse", Address: medusa.StockLocationAddress{City: "Toronto", CountryCode: "CA"}},
	{Name: "West Africa Warehouse - Mali", Address: medusa.StockLocationAddress{City: "Bamako", CountryCode: "ML"}},
	{Name: "West Africa Warehouse - Ivory Coast", Address: medusa.StockLocationAddress{City: "Abidjan", CountryCode: "CI"}},
	{Name: "West Africa Warehouse - Senegal", Address: medusa.StockLocationAddress{City: "Dakar", CountryCode: "SN"}},
}

var seedServiceZones = []medusa.ServiceZoneReq{
	{
		Name: "Europe",
		GeoZones: []medusa.GeoZone{
			{CountryCode: "gb", Type: "country"},
			{CountryCode: "de", Type: "country"},
			{CountryCode: "dk", Type: "country"},
			{CountryCode: "se", Type: "country"},
			{CountryCode: "fr", Type: "country"},
			{CountryCode: "es", Type: "country"},
			{CountryCode: "it", Type: "country"},
		},
	},
	{
		Name: "North America",
		GeoZones: []medusa.GeoZone{
			{CountryCode: "us", Type: "country"},
			{CountryCode: "ca", Type: "country"},
		},
	},
	{
		Name: "West Africa",
		GeoZones: []medusa.GeoZone{
			{CountryCode: "ml", Type: "country"},
			{CountryCode: "ci", Type: "country"},
			{CountryCode: "sn", Type: "country"},
		},
	},
}

var seedCategories = []medusa.CreateProductCategoryReq{
	{Name: "Shirts", IsActive: true},
	{Name: "Sweatshirts", IsActive: true},
	{Name: "Pants", IsActive: true},
	{Name: "Merch", IsActive: true},
	{Name: "Adult", IsActive: true, Description: "Lingerie & Intimate Products"},
	{Name: "Electronics", IsActive: true, Description: "Gadgets & Devices"},
	{Name: "Home & Living", IsActive: true},
	{Name: "Health & Wellness", IsActive: true},
	{Name: "Women's Essentials", IsActive: true, Description: "Wigs, Cosmetics, and More"},
	{Name: "Men's Essentials", IsActive: true},
}

// ==================== 平台接口依赖 ====================

// SeedAPI 初始化流程用到的平台能力
type SeedAPI interface {
	ListStores(ctx context.Context) ([]medusa.Store, error)
	UpdateStore(ctx context.Context, storeID string, req medusa.UpdateStoreReq) error
	ListSalesChannels(ctx context.Context, name string) ([]medusa.SalesChannel, error)
	CreateSalesChannel(ctx context.Context, req medusa.CreateSalesChannelReq) (*medusa.SalesChannel, error)
	CreateRegion(ctx context.Context, req medusa.CreateRegionReq) (*medusa.Region, error)
	CreateTaxRegion(ctx context.Context, req medusa.CreateTaxRegionReq) (*medusa.TaxRegion, error)
	CreateStockLocation(ctx context.Context, req medusa.CreateStockLocationReq) (*medusa.StockLocation, error)
	AddFulfillmentProvider(ctx context.Context, stockLocationID, providerID string) error
	CreateFulfillmentSet(ctx context.Context, stockLocationID string, req medusa.CreateFulfillmentSetReq) (*medusa.FulfillmentSet, error)
	ListShippingProfiles(ctx context.Context, profileType string) ([]medusa.ShippingProfile, error)
	CreateShippingProfile(ctx context.Context, req medusa.CreateShippingProfileReq) (*medusa.ShippingProfile, error)
	CreateShippingOption(ctx context.Context, req medusa.CreateShippingOptionReq) (*medusa.ShippingOption, error)
	AddSalesChannelsToStockLocation(ctx context.Context, stockLocationID string, channelIDs []string) error
	CreateAPIKey(ctx context.Context, req medusa.CreateAPIKeyReq) (*medusa.APIKey, error)
	AddSalesChannelsToAPIKey(ctx context.Context, apiKeyID string, channelIDs []string) error
	CreateProductCategory(ctx context.Context, req medusa.CreateProductCategoryReq) (*medusa.ProductCategory, error)
	CreateProductsBatch(ctx context.Context, products []model.Product) ([]medusa.CreatedProduct, error)
	ListInventoryItems(ctx context.Context) ([]medusa.InventoryItem, error)
	CreateInventoryLevelsBatch(ctx context.Context, levels []medusa.InventoryLevelInput) error
}

// ==================== 服务实现 ====================

// SeedService 开站初始化服务
// 按固定顺序调用平台接口：店铺 -> 区域 -> 税区 -> 库存地点 -> 履约
// -> API Key -> 分类 -> 商品（CSV 导入 + 内置示例品）-> 库存水位
type SeedService struct {
	api     SeedAPI
	csvPath string
	logger  *zap.Logger
}

// NewSeedService 创建初始化服务
func NewSeedService(api SeedAPI, csvPath string, logger *zap.Logger) *SeedService {
	return &SeedService{api: api, csvPath: csvPath, logger: logger}
}

// Run 执行完整初始化流程，任一步失败立即中止
func (s *SeedService) Run(ctx context.Context) error {
	logger := s.logger.With(zap.String("run_id", uuid.NewString()))

	logger.Info("开始初始化店铺数据...")
	defaultChannel, stockLocation, err := s.seedStore(ctx, logger)
	if err != nil {
		return err
	}

	logger.Info("开始初始化 API Key...")
	if err := s.seedAPIKey(ctx, defaultChannel); err != nil {
		return err
	}
	logger.Info("API Key 初始化完成")

	logger.Info("开始初始化商品数据...")
	shippingProfile, err := s.defaultShippingProfile(ctx)
	if err != nil {
		return err
	}
	categories, err := s.seedCategories(ctx)
	if err != nil {
		return err
	}
	if err := s.seedProducts(ctx, logger, categories, shippingProfile, defaultChannel); err != nil {
		return err
	}
	logger.Info("商品数据初始化完成")

	logger.Info("开始写入库存水位...")
	if err := s.seedInventoryLevels(ctx, logger, stockLocation); err != nil {
		return err
	}
	logger.Info("库存水位写入完成")

	return nil
}

// seedStore 店铺、区域、税区、库存地点与履约链路
func (s *SeedService) seedStore(ctx context.Context, logger *zap.Logger) (*medusa.SalesChannel, *medusa.StockLocation, error) {
	stores, err := s.api.ListStores(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("查询店铺失败: %w", err)
	}
	if len(stores) == 0 {
		return nil, nil, fmt.Errorf("平台没有任何店铺，无法初始化")
	}
	store := stores[0]

	// 默认销售渠道：存在则复用，不存在则创建
	channels, err := s.api.ListSalesChannels(ctx, defaultSalesChannelName)
	if err != nil {
		return nil, nil, fmt.Errorf("查询销售渠道失败: %w", err)
	}
	var defaultChannel *medusa.SalesChannel
	if len(channels) > 0 {
		defaultChannel = &channels[0]
	} else {
		defaultChannel, err = s.api.CreateSalesChannel(ctx, medusa.CreateSalesChannelReq{Name: defaultSalesChannelName})
		if err != nil {
			return nil, nil, fmt.Errorf("创建默认销售渠道失败: %w", err)
		}
	}

	err = s.api.UpdateStore(ctx, store.ID, medusa.UpdateStoreReq{
		SupportedCurrencies:   supportedCurrencies,
		DefaultSalesChannelID: defaultChannel.ID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("更新店铺失败: %w", err)
	}

	logger.Info("开始初始化区域数据...")
	_, err = s.api.CreateRegion(ctx, medusa.CreateRegionReq{
		Name:             "Europe",
		CurrencyCode:     defaultCurrencyCode,
		Countries:        seedCountries,
		PaymentProviders: []string{paymentProviderID},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("创建区域失败: %w", err)
	}
	logger.Info("区域数据初始化完成")

	logger.Info("开始初始化税区...")
	for _, country := range seedCountries {
		if _, err := s.api.CreateTaxRegion(ctx, medusa.CreateTaxRegionReq{
			CountryCode: country,
			ProviderID:  taxProviderID,
		}); err != nil {
			return nil, nil, fmt.Errorf("创建税区 %s 失败: %w", country, err)
		}
	}
	logger.Info("税区初始化完成")

	logger.Info("开始初始化库存地点...")
	locations := make([]*medusa.StockLocation, 0, len(seedStockLocations))
	for _, req := range seedStockLocations {
		loc, err := s.api.CreateStockLocation(ctx, req)
		if err != nil {
			return nil, nil, fmt.Errorf("创建库存地点 %s 失败: %w", req.Name, err)
		}
		locations = append(locations, loc)
	}
	stockLocation := locations[0]

	if err := s.api.AddFulfillmentProvider(ctx, stockLocation.ID, fulfillmentProviderID); err != nil {
		return nil, nil, fmt.Errorf("挂载履约服务商失败: %w", err)
	}

	logger.Info("开始初始化履约数据...")
	if err := s.seedFulfillment(ctx, stockLocation); err != nil {
		return nil, nil, err
	}
	logger.Info("履约数据初始化完成")

	if err := s.api.AddSalesChannelsToStockLocation(ctx, stockLocation.ID, []string{defaultChannel.ID}); err != nil {
		return nil, nil, fmt.Errorf("给库存地点挂销售渠道失败: %w", err)
	}
	logger.Info("库存地点初始化完成")

	return defaultChannel, stockLocation, nil
}

// seedFulfillment 履约集合与运费项
func (s *SeedService) seedFulfillment(ctx context.Context, stockLocation *medusa.StockLocation) error {
	profile, err := s.defaultShippingProfile(ctx)
	if err != nil {
		return err
	}

	set, err := s.api.CreateFulfillmentSet(ctx, stockLocation.ID, medusa.CreateFulfillmentSetReq{
		Name:         "Global Warehouse delivery",
		Type:         "shipping",
		ServiceZones: seedServiceZones,
	})
	if err != nil {
		return fmt.Errorf("创建履约集合失败: %w", err)
	}
	if len(set.ServiceZones) == 0 {
		return fmt.Errorf("履约集合没有返回任何服务区域")
	}
	europeZone := set.ServiceZones[0]

	shippingOptions := []medusa.CreateShippingOptionReq{
		{
			Name:              "Standard Shipping",
			PriceType:         "flat",
			ProviderID:        fulfillmentProviderID,
			ServiceZoneID:     europeZone.ID,
			ShippingProfileID: profile.ID,
			Type: medusa.ShippingOptionType{
				Label:       "Standard",
				Description: "Ship in 2-3 days.",
				Code:        "standard",
			},
			Prices: []medusa.ShippingOptionPrice{
				{CurrencyCode: "usd", Amount: 10},
				{CurrencyCode: "eur", Amount: 10},
				{CurrencyCode: "xof", Amount: 6000},
			},
			Rules: defaultShippingRules(),
		},
		{
			Name:              "Express Shipping",
			PriceType:         "flat",
			ProviderID:        fulfillmentProviderID,
			ServiceZoneID:     europeZone.ID,
			ShippingProfileID: profile.ID,
			Type: medusa.ShippingOptionType{
				Label:       "Express",
				Description: "Ship in 24 hours.",
				Code:        "express",
			},
			Prices: []medusa.ShippingOptionPrice{
				{CurrencyCode: "usd", Amount: 20},
				{CurrencyCode: "eur", Amount: 20},
				{CurrencyCode: "xof", Amount: 12000},
			},
			Rules: defaultShippingRules(),
		},
	}

	for _, req := range shippingOptions {
		if _, err := s.api.CreateShippingOption(ctx, req); err != nil {
			return fmt.Errorf("创建运费项 %s 失败: %w", req.Name, err)
		}
	}
	return nil
}

func defaultShippingRules() []medusa.ShippingOptionRule {
	return []medusa.ShippingOptionRule{
		{Attribute: "enabled_in_store", Value: "true", Operator: "eq"},
		{Attribute: "is_return", Value: "false", Operator: "eq"},
	}
}

// defaultShippingProfile 默认运费模板：存在则复用，不存在则创建
func (s *SeedService) defaultShippingProfile(ctx context.Context) (*medusa.ShippingProfile, error) {
	profiles, err := s.api.ListShippingProfiles(ctx, "default")
	if err != nil {
		return nil, fmt.Errorf("查询运费模板失败: %w", err)
	}
	if len(profiles) > 0 {
		return &profiles[0], nil
	}
	profile, err := s.api.CreateShippingProfile(ctx, medusa.CreateShippingProfileReq{
		Name: "Default Shipping Profile",
		Type: "default",
	})
	if err != nil {
		return nil, fmt.Errorf("创建运费模板失败: %w", err)
	}
	return profile, nil
}

// seedAPIKey 可发布 API Key 并关联默认销售渠道
func (s *SeedService) seedAPIKey(ctx context.Context, defaultChannel *medusa.SalesChannel) error {
	key, err := s.api.CreateAPIKey(ctx, medusa.CreateAPIKeyReq{
		Title:     publishableKeyTitle,
		Type:      "publishable",
		CreatedBy: apiKeyCreatedBy,
	})
	if err != nil {
		return fmt.Errorf("创建 API Key 失败: %w", err)
	}
	if err := s.api.AddSalesChannelsToAPIKey(ctx, key.ID, []string{defaultChannel.ID}); err != nil {
		return fmt.Errorf("给 API Key 挂销售渠道失败: %w", err)
	}
	return nil
}

// seedCategories 创建全部商品分类，返回供 CSV 导入做名称匹配的引用列表
func (s *SeedService) seedCategories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0, len(seedCategories))
	for _, req := range seedCategories {
		cat, err := s.api.CreateProductCategory(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("创建分类 %s 失败: %w", req.Name, err)
		}
		categories = append(categories, model.Category{ID: cat.ID, Name: cat.Name})
	}
	return categories, nil
}

// seedProducts CSV 导入的商品加内置示例品，一次批量建品
func (s *SeedService) seedProducts(
	ctx context.Context,
	logger *zap.Logger,
	categories []model.Category,
	profile *medusa.ShippingProfile,
	defaultChannel *medusa.SalesChannel,
) error {
	shippingProfile := model.ShippingProfile{ID: profile.ID}
	salesChannels := []model.SalesChannel{{ID: defaultChannel.ID}}

	loader := ingest.NewLoader(categories, shippingProfile, salesChannels, logger)
	csvProducts, err := loader.LoadFile(ctx, s.csvPath)
	if err != nil {
		return fmt.Errorf("CSV 商品导入失败: %w", err)
	}
	logger.Info("CSV 商品解析完成", zap.Int("count", len(csvProducts)))

	demoProducts, err := demoProducts(categories, shippingProfile, salesChannels)
	if err != nil {
		return fmt.Errorf("构建内置示例品失败: %w", err)
	}

	products := append(csvProducts, demoProducts...)
	created, err := s.api.CreateProductsBatch(ctx, products)
	if err != nil {
		return fmt.Errorf("批量建品失败: %w", err)
	}
	logger.Info("批量建品完成", zap.Int("created", len(created)))
	return nil
}

// seedInventoryLevels 所有库存条目在首个库存地点铺满固定库存
func (s *SeedService) seedInventoryLevels(ctx context.Context, logger *zap.Logger, stockLocation *medusa.StockLocation) error {
	items, err := s.api.ListInventoryItems(ctx)
	if err != nil {
		return fmt.Errorf("查询库存条目失败: %w", err)
	}

	levels := make([]medusa.InventoryLevelInput, 0, len(items))
	for _, item := range items {
		levels = append(levels, medusa.InventoryLevelInput{
			InventoryItemID: item.ID,
			LocationID:      stockLocation.ID,
			StockedQuantity: stockedQuantity,
		})
	}
	if len(levels) == 0 {
		logger.Warn("没有库存条目，跳过库存水位写入")
		return nil
	}

	if err := s.api.CreateInventoryLevelsBatch(ctx, levels); err != nil {
		return fmt.Errorf("写入库存水位失败: %w", err)
	}
	logger.Info("库存水位写入", zap.Int("count", len(levels)))
	return nil
}
