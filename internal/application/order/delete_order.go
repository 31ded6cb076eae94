package order

import (
	"context"
	"log"

	"github.com/xiebiao/petstore/internal/domain/order"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// DeleteOrderUseCase 删除订单用例
// 明细随订单一同删除(组合关系:明细不能脱离订单存在);
// 删除不回补库存,库存修正属于运营侧补货流程
type DeleteOrderUseCase struct {
	orderRepo order.Repository
	cache     Cache // 可为nil
}

// NewDeleteOrderUseCase 创建删除订单用例
func NewDeleteOrderUseCase(orderRepo order.Repository, cache Cache) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// Execute 执行删除
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, orderID, userID uint) error {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(userID) {
		return apperrors.ErrForbidden
	}

	if err := uc.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, orderID); err != nil {
			log.Printf("订单缓存失效失败: orderID=%d err=%v", orderID, err)
		}
	}

	return nil
}
