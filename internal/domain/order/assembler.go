package order

import (
	"time"

	"github.com/xiebiao/petstore/internal/domain/product"
)

// 订单装配:把预留好库存的商品快照组装成订单聚合。
// 纯函数,不做I/O,不做校验:用户、库存校验都在上游
// (协调者与库存台账)完成。

// NewItemFromProduct 根据商品快照构建订单明细(未落库)
// 价格快照在这里显式发生:复制快照的Price,之后任何环节
// 都不会再回读商品目录价,历史订单金额不受改价影响。
func NewItemFromProduct(p *product.Product, quantity int) Item {
	return Item{
		ProductID: p.ID,
		Quantity:  quantity,
		Price:     p.Price, // 使用锁定时的价格,不信任前端传值
		Subtotal:  p.Price * int64(quantity),
	}
}

// Assemble 组装订单聚合(未落库)
// 汇总明细小计得到Total;status由调用方解析,未指定时
// 上游已默认为StatusPending。
func Assemble(userID uint, orderNo string, status Status, remark string, items []Item) *Order {
	var total int64
	for _, item := range items {
		total += item.Subtotal
	}

	now := time.Now()
	return &Order{
		OrderNo:   orderNo,
		UserID:    userID,
		Total:     total,
		Status:    status,
		Remark:    remark,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
