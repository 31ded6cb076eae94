package dto

import "fmt"

// CreateProductRequest HTTP上架请求
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200" example:"皇家猫粮2kg"`
	Description string `json:"description" binding:"max=5000" example:"室内成猫专用"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"1999"` // 价格(分),19.99元
	Stock       int    `json:"stock" binding:"min=0" example:"100"`
}

// ProductResponse HTTP商品响应
type ProductResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"皇家猫粮2kg"`
	Description string `json:"description" example:"室内成猫专用"`
	Price       int64  `json:"price" example:"1999"`       // 价格(分)
	PriceYuan   string `json:"price_yuan" example:"19.99"` // 价格(元),方便前端显示
	Stock       int    `json:"stock" example:"100"`
	CreatedAt   string `json:"created_at" example:"2025-01-15 10:30:00"`
	UpdatedAt   string `json:"updated_at" example:"2025-01-15 10:30:00"`
}

// ListProductsRequest HTTP商品列表请求
type ListProductsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"猫粮"`
}

// ListProductsResponse HTTP商品列表响应
type ListProductsResponse struct {
	List  []ProductResponse `json:"list"`
	Total int64             `json:"total" example:"100"`
	Page  int               `json:"page" example:"1"`
	Size  int               `json:"size" example:"20"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如: 1999分 → "19.99"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
