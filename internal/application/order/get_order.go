package order

import (
	"context"
	"log"

	"github.com/xiebiao/petstore/internal/domain/order"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// GetOrderUseCase 查询订单用例(含明细)
// 读路径走Redis缓存,缓存故障降级为直接读库
type GetOrderUseCase struct {
	orderRepo order.Repository
	cache     Cache // 可为nil(未接入缓存时)
}

// NewGetOrderUseCase 创建查询订单用例
func NewGetOrderUseCase(orderRepo order.Repository, cache Cache) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// Execute 按ID查询订单
// userID用于归属校验:非本人订单返回无权限
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID, userID uint) (*order.Order, error) {
	// 1. 先查缓存
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, orderID); err != nil {
			log.Printf("订单缓存读取失败,降级读库: orderID=%d err=%v", orderID, err)
		} else if cached != nil {
			if !cached.IsOwnedBy(userID) {
				return nil, apperrors.ErrForbidden
			}
			return cached, nil
		}
	}

	// 2. 缓存未命中,读库
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(userID) {
		return nil, apperrors.ErrForbidden
	}

	// 3. 回填缓存(失败只记日志)
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, o); err != nil {
			log.Printf("订单缓存写入失败: orderID=%d err=%v", orderID, err)
		}
	}

	return o, nil
}
