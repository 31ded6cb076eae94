package order

import (
	"context"
	"log"

	"github.com/xiebiao/petstore/internal/domain/order"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// UpdateOrderUseCase 更新订单用例(状态流转、备注)
// 更新走显式字段结构,不接受"传什么改什么"的动态patch
type UpdateOrderUseCase struct {
	orderRepo order.Repository
	cache     Cache // 可为nil
}

// NewUpdateOrderUseCase 创建更新订单用例
func NewUpdateOrderUseCase(orderRepo order.Repository, cache Cache) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// UpdateOrderRequest 更新请求
// 指针字段为nil表示不修改
type UpdateOrderRequest struct {
	OrderID uint
	UserID  uint    // 操作者,必须是订单归属人
	Status  *string // 目标状态(走状态机校验)
	Remark  *string // 新备注
}

// Execute 执行更新
// 状态修改必须满足状态机流转规则(如已送达不能再取消)
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, req UpdateOrderRequest) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(req.UserID) {
		return nil, apperrors.ErrForbidden
	}

	upd := order.Update{}

	if req.Status != nil {
		target, err := order.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		// 状态机校验并应用到内存实体
		if err := o.TransitionTo(target); err != nil {
			return nil, err
		}
		upd.Status = &target
	}

	if req.Remark != nil {
		o.Remark = *req.Remark
		upd.Remark = req.Remark
	}

	if upd.Status == nil && upd.Remark == nil {
		// 没有任何字段需要更新
		return o, nil
	}

	if err := uc.orderRepo.Update(ctx, req.OrderID, upd); err != nil {
		return nil, err
	}

	// 缓存失效(失败只记日志,下一次读会回源)
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.OrderID); err != nil {
			log.Printf("订单缓存失效失败: orderID=%d err=%v", req.OrderID, err)
		}
	}

	return o, nil
}
