package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 支持事务操作(通过context传递事务)
type Repository interface {
	// Create 创建订单(包含订单明细)
	// 实现约定:先写订单头,拿到自增ID后再逐条写明细
	// (明细的OrderID只能在订单头持久化之后赋值),
	// 两步必须在同一事务中
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 按字段更新订单
	// 只有Update结构体中显式置位的字段会被更新,
	// 防止"传什么改什么"式的批量赋值
	Update(ctx context.Context, id uint, upd Update) error

	// Delete 删除订单(连同明细)
	Delete(ctx context.Context, id uint) error

	// ListByUserID 查询用户的订单列表(分页,含明细)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}

// Update 订单可变字段的显式更新结构
// nil表示该字段不更新
type Update struct {
	Status *Status // 订单状态
	Remark *string // 买家备注
}
