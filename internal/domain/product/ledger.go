package product

import (
	"context"
)

// Ledger 库存台账
// 下单流程中唯一允许修改库存的组件。
//
// 核心问题:库存超卖
// 场景:商品库存10个,100人同时下单
// 错误实现:先普通SELECT查库存,再判断,再UPDATE,100个请求都能通过判断。
// 正确实现:在事务内SELECT FOR UPDATE锁定行后检查,再扣减,COMMIT释放锁。
//
// Reserve必须在活动事务内调用(事务DB通过context传入),
// 写入只有在外层事务COMMIT后才可见,回滚则库存保持原值。
type Ledger struct {
	repo Repository
}

// NewLedger 创建库存台账
func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

// Reserve 为一条订单明细预留库存
// 流程:
// 1. 锁定商品行(SELECT FOR UPDATE,读与写在同一隔离范围内)
// 2. 检查库存是否充足(必须在锁定后检查,否则并发扣减会超卖)
// 3. 扣减库存(UPDATE带stock>=0守护条件)
// 4. 返回商品快照(调用方用它的Price做价格快照)
//
// 失败语义:商品不存在返回ErrProductNotFound;库存不足返回
// 带商品名称与当前库存的错误;quantity<=0直接拒绝。
func (l *Ledger) Reserve(ctx context.Context, productID uint, quantity int) (*Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// 锁定商品行,其他事务必须等待当前事务COMMIT或ROLLBACK
	p, err := l.repo.LockByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if p.Stock < quantity {
		return nil, NewInsufficientStockError(p.Name, p.Stock, quantity)
	}

	if err := l.repo.UpdateStock(ctx, productID, -quantity); err != nil {
		return nil, err
	}

	// 快照反映扣减后的库存;Price保持锁定时的值
	p.Stock -= quantity
	return p, nil
}
