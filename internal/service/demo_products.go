package service

import (
	"fmt"
	"strings"

	"medusa_seed_v1_202608/internal/model"
)

// ==================== 内置示例品 ====================

const (
	demoWeight  = 400
	imageBucket = "https://medusa-public-images.s3.eu-west-1.amazonaws.com"
)

var demoSizes = []string{"S", "M", "L", "XL"}
var demoColors = []string{"Black", "White"}

// demoProducts 四个内置示例品，与 CSV 商品合并后一次批量建品
func demoProducts(
	categories []model.Category,
	profile model.ShippingProfile,
	channels []model.SalesChannel,
) ([]model.Product, error) {
	categoryID := func(name string) (string, error) {
		for _, c := range categories {
			if c.Name == name {
				return c.ID, nil
			}
		}
		return "", fmt.Errorf("缺少内置示例品依赖的分类: %s", name)
	}

	shirtsID, err := categoryID("Shirts")
	if err != nil {
		return nil, err
	}
	sweatshirtsID, err := categoryID("Sweatshirts")
	if err != nil {
		return nil, err
	}
	pantsID, err := categoryID("Pants")
	if err != nil {
		return nil, err
	}
	merchID, err := categoryID("Merch")
	if err != nil {
		return nil, err
	}

	tshirt := model.Product{
		Title:       "Medusa T-Shirt",
		Description: "Reimagine the feeling of a classic T-shirt. With our cotton T-shirts, everyday essentials no longer have to be ordinary.",
		Handle:      "t-shirt",
		Weight:      demoWeight,
		Status:      model.ProductStatusPublished,
		CategoryIDs: []string{shirtsID},
		Images: []model.Image{
			{URL: imageBucket + "/tee-black-front.png"},
			{URL: imageBucket + "/tee-black-back.png"},
			{URL: imageBucket + "/tee-white-front.png"},
			{URL: imageBucket + "/tee-white-back.png"},
		},
		Options: []model.ProductOption{
			{Title: "Size", Values: demoSizes},
			{Title: "Color", Values: demoColors},
		},
		ShippingProfileID: profile.ID,
		SalesChannels:     channels,
		Variants:          tshirtVariants(),
	}

	sweatshirt := model.Product{
		Title:       "Medusa Sweatshirt",
		Description: "Reimagine the feeling of a classic sweatshirt. With our cotton sweatshirt, everyday essentials no longer have to be ordinary.",
		Handle:      "sweatshirt",
		Weight:      demoWeight,
		Status:      model.ProductStatusPublished,
		CategoryIDs: []string{sweatshirtsID},
		Images: []model.Image{
			{URL: imageBucket + "/sweatshirt-vintage-front.png"},
			{URL: imageBucket + "/sweatshirt-vintage-back.png"},
		},
		Options: []model.ProductOption{
			{Title: "Size", Values: demoSizes},
		},
		ShippingProfileID: profile.ID,
		SalesChannels:     channels,
		Variants:          sizeVariants("SWEATSHIRT"),
	}

	sweatpants := model.Product{
		Title:       "Medusa Sweatpants",
		Description: "Reimagine the feeling of classic sweatpants. With our cotton sweatpants, everyday essentials no longer have to be ordinary.",
		Handle:      "sweatpants",
		Weight:      demoWeight,
		Status:      model.ProductStatusPublished,
		CategoryIDs: []string{pantsID},
		Images: []model.Image{
			{URL: imageBucket + "/sweatpants-gray-front.png"},
			{URL: imageBucket + "/sweatpants-gray-back.png"},
		},
		Options: []model.ProductOption{
			{Title: "Size", Values: demoSizes},
		},
		ShippingProfileID: profile.ID,
		SalesChannels:     channels,
		Variants:          sizeVariants("SWEATPANTS"),
	}

	shorts := model.Product{
		Title:       "Medusa Shorts",
		Description: "Reimagine the feeling of classic shorts. With our cotton shorts, everyday essentials no longer have to be ordinary.",
		Handle:      "shorts",
		Weight:      demoWeight,
		Status:      model.ProductStatusPublished,
		CategoryIDs: []string{merchID},
		Images: []model.Image{
			{URL: imageBucket + "/shorts-vintage-front.png"},
			{URL: imageBucket + "/shorts-vintage-back.png"},
		},
		Options: []model.ProductOption{
			{Title: "Size", Values: demoSizes},
		},
		ShippingProfileID: profile.ID,
		SalesChannels:     channels,
		Variants:          sizeVariants("SHORTS"),
	}

	return []model.Product{tshirt, sweatshirt, sweatpants, shorts}, nil
}

// tshirtVariants 尺码 × 颜色全组合，共 8 个变体
func tshirtVariants() []model.Variant {
	variants := make([]model.Variant, 0, len(demoSizes)*len(demoColors))
	for _, size := range demoSizes {
		for _, color := range demoColors {
			variants = append(variants, model.Variant{
				Title:   size + " / " + color,
				SKU:     fmt.Sprintf("SHIRT-%s-%s", size, strings.ToUpper(color)),
				Options: map[string]string{"Size": size, "Color": color},
				Prices:  demoPrices(),
			})
		}
	}
	return variants
}

// sizeVariants 仅尺码维度的 4 个变体
func sizeVariants(skuPrefix string) []model.Variant {
	variants := make([]model.Variant, 0, len(demoSizes))
	for _, size := range demoSizes {
		variants = append(variants, model.Variant{
			Title:   size,
			SKU:     fmt.Sprintf("%s-%s", skuPrefix, size),
			Options: map[string]string{"Size": size},
			Prices:  demoPrices(),
		})
	}
	return variants
}

func demoPrices() []model.Price {
	return []model.Price{
		{Amount: 10, CurrencyCode: "eur"},
		{Amount: 15, CurrencyCode: "usd"},
	}
}
