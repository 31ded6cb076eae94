package order

import (
	"context"

	"github.com/xiebiao/petstore/internal/domain/order"
)

// ListOrdersUseCase 查询用户订单列表用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 分页查询用户的订单(含明细)
// 页码与页大小做边界归一,防止一次性拉取大量数据
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	return uc.orderRepo.ListByUserID(ctx, userID, page, pageSize)
}
