package model

// ==================== 引用数据 ====================
// 导入 CSV 前由外围初始化流程准备好的平台侧实体引用

// Category 已创建的商品分类
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShippingProfile 运费模板
type ShippingProfile struct {
	ID string `json:"id"`
}

// SalesChannel 销售渠道
type SalesChannel struct {
	ID string `json:"id"`
}
