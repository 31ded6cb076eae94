package product

import (
	"time"
)

// Product 商品实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. Stock是下单流程中唯一的共享竞争资源,任何时刻不允许为负
// 3. 下单期间只有库存台账(Ledger)允许修改Stock
type Product struct {
	ID          uint
	Name        string // 商品名称
	Description string // 商品描述
	Price       int64  // 价格(单位:分,1元=100分)
	Stock       int    // 库存数量
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct 创建新商品(工厂方法)
// price单位为分,必须>=0;stock为初始库存,必须>=0
func NewProduct(name, description string, price int64, stock int) (*Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	now := time.Now()
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// DecrStock 扣减库存(领域行为)
// 业务规则:扣减后库存不能为负数
func (p *Product) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return NewInsufficientStockError(p.Name, p.Stock, quantity)
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存(用于补货)
func (p *Product) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}
