package model

// ==================== 商品状态 ====================

// ProductStatus 商品发布状态
type ProductStatus string

const (
	ProductStatusPublished ProductStatus = "published"
	ProductStatusDraft     ProductStatus = "draft"
)

// ==================== 建品入参结构 ====================
// 以下结构体是平台批量建品接口的入参形态，不落本地库，只做 JSON 序列化

// Price 变体价格，Amount 为最小货币单位（如美分）
type Price struct {
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// Image 商品图片
type Image struct {
	URL string `json:"url"`
}

// ProductOption 商品选项（如 Size），Values 为该选项的允许值集合
type ProductOption struct {
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

// Variant 商品变体
// Options 为选项标题到单个已校验值的映射，例如 {"Size": "S"}
type Variant struct {
	Title   string            `json:"title"`
	SKU     string            `json:"sku"`
	Options map[string]string `json:"options"`
	Prices  []Price           `json:"prices"`
}

// Product 单个商品的完整建品入参
type Product struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Handle            string          `json:"handle"`
	Weight            int             `json:"weight"`
	Status            ProductStatus   `json:"status"`
	CategoryIDs       []string        `json:"category_ids"`
	Images            []Image         `json:"images"`
	Options           []ProductOption `json:"options"`
	ShippingProfileID string          `json:"shipping_profile_id"`
	Variants          []Variant       `json:"variants"`
	SalesChannels     []SalesChannel  `json:"sales_channels"`
}
