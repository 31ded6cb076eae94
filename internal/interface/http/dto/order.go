package dto

import "github.com/xiebiao/petstore/internal/domain/order"

// PlaceOrderRequest HTTP下单请求
type PlaceOrderRequest struct {
	OrderNo string                  `json:"order_no" binding:"omitempty,max=32" example:"ORD1699248000123456"` // 可选,留空自动生成
	Status  string                  `json:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled" example:"pending"`
	Remark  string                  `json:"remark" binding:"max=500" example:"尽快发货"`
	Items   []PlaceOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrderItemRequest 订单明细项
type PlaceOrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=999"`
}

// OrderItemResponse HTTP订单明细响应
type OrderItemResponse struct {
	ID           uint   `json:"id" example:"1"`
	ProductID    uint   `json:"product_id" example:"10"`
	Quantity     int    `json:"quantity" example:"2"`
	Price        int64  `json:"price" example:"1999"`
	PriceYuan    string `json:"price_yuan" example:"19.99"`
	Subtotal     int64  `json:"subtotal" example:"3998"`
	SubtotalYuan string `json:"subtotal_yuan" example:"39.98"`
}

// OrderResponse HTTP订单响应
type OrderResponse struct {
	ID        uint                `json:"id" example:"1"`
	OrderNo   string              `json:"order_no" example:"ORD1699248000123456"`
	UserID    uint                `json:"user_id" example:"1"`
	Total     int64               `json:"total" example:"3998"`
	TotalYuan string              `json:"total_yuan" example:"39.98"`
	Status    string              `json:"status" example:"pending"`
	Remark    string              `json:"remark" example:"尽快发货"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt string              `json:"created_at" example:"2025-01-15 10:30:00"`
	UpdatedAt string              `json:"updated_at" example:"2025-01-15 10:30:00"`
}

// UpdateOrderRequest HTTP订单更新请求
// 指针字段区分"未传"与"传了零值",只更新显式传入的字段
type UpdateOrderRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled" example:"paid"`
	Remark *string `json:"remark" binding:"omitempty,max=500" example:"改送晚上"`
}

// ListOrdersRequest HTTP订单列表请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"10"`
}

// ToOrderResponse 领域实体 → HTTP响应
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			PriceYuan:    FormatPriceYuan(item.Price),
			Subtotal:     item.Subtotal,
			SubtotalYuan: FormatPriceYuan(item.Subtotal),
		}
	}

	return &OrderResponse{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		TotalYuan: FormatPriceYuan(o.Total),
		Status:    o.Status.String(),
		Remark:    o.Remark,
		Items:     items,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
