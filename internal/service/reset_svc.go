package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medusa_seed_v1_202608/pkg/medusa"
)

// ResetAPI 清库流程用到的平台能力
type ResetAPI interface {
	ListProducts(ctx context.Context) ([]medusa.CreatedProduct, error)
	DeleteProduct(ctx context.Context, productID string) error
	ListProductCategories(ctx context.Context) ([]medusa.ProductCategory, error)
	DeleteProductCategory(ctx context.Context, categoryID string) error
	ListRegions(ctx context.Context) ([]medusa.Region, error)
	DeleteRegion(ctx context.Context, regionID string) error
	ListShippingProfiles(ctx context.Context, profileType string) ([]medusa.ShippingProfile, error)
	DeleteShippingProfile(ctx context.Context, profileID string) error
	ListSalesChannels(ctx context.Context, name string) ([]medusa.SalesChannel, error)
	DeleteSalesChannel(ctx context.Context, channelID string) error
}

// ResetService 清库服务
// 按依赖倒序删除：商品 -> 分类 -> 区域 -> 运费模板 -> 销售渠道
type ResetService struct {
	api    ResetAPI
	logger *zap.Logger
}

// NewResetService 创建清库服务
func NewResetService(api ResetAPI, logger *zap.Logger) *ResetService {
	return &ResetService{api: api, logger: logger}
}

// Run 执行完整清库流程，任一步失败立即中止
func (s *ResetService) Run(ctx context.Context) error {
	logger := s.logger.With(zap.String("run_id", uuid.NewString()))

	logger.Info("开始清除商品...")
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("查询商品失败: %w", err)
	}
	for _, p := range products {
		if err := s.api.DeleteProduct(ctx, p.ID); err != nil {
			return fmt.Errorf("删除商品 %s 失败: %w", p.ID, err)
		}
	}
	logger.Info("商品清除完成", zap.Int("count", len(products)))

	logger.Info("开始清除分类...")
	categories, err := s.api.ListProductCategories(ctx)
	if err != nil {
		return fmt.Errorf("查询分类失败: %w", err)
	}
	for _, c := range categories {
		if err := s.api.DeleteProductCategory(ctx, c.ID); err != nil {
			return fmt.Errorf("删除分类 %s 失败: %w", c.ID, err)
		}
	}
	logger.Info("分类清除完成", zap.Int("count", len(categories)))

	logger.Info("开始清除区域...")
	regions, err := s.api.ListRegions(ctx)
	if err != nil {
		return fmt.Errorf("查询区域失败: %w", err)
	}
	for _, r := range regions {
		if err := s.api.DeleteRegion(ctx, r.ID); err != nil {
			return fmt.Errorf("删除区域 %s 失败: %w", r.ID, err)
		}
	}
	logger.Info("区域清除完成", zap.Int("count", len(regions)))

	logger.Info("开始清除运费模板...")
	profiles, err := s.api.ListShippingProfiles(ctx, "")
	if err != nil {
		return fmt.Errorf("查询运费模板失败: %w", err)
	}
	for _, p := range profiles {
		if err := s.api.DeleteShippingProfile(ctx, p.ID); err != nil {
			return fmt.Errorf("删除运费模板 %s 失败: %w", p.ID, err)
		}
	}
	logger.Info("运费模板清除完成", zap.Int("count", len(profiles)))

	logger.Info("开始清除销售渠道...")
	channels, err := s.api.ListSalesChannels(ctx, "")
	if err != nil {
		return fmt.Errorf("查询销售渠道失败: %w", err)
	}
	for _, c := range channels {
		if err := s.api.DeleteSalesChannel(ctx, c.ID); err != nil {
			return fmt.Errorf("删除销售渠道 %s 失败: %w", c.ID, err)
		}
	}
	logger.Info("销售渠道清除完成", zap.Int("count", len(channels)))

	return nil
}
