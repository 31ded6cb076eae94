package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/petstore/internal/domain/product"
)

// TestNewItemFromProduct 明细构建:价格快照与小计计算
func TestNewItemFromProduct(t *testing.T) {
	p := &product.Product{
		ID:    10,
		Name:  "猫粮",
		Price: 1999, // 19.99元
		Stock: 5,
	}

	item := NewItemFromProduct(p, 2)

	assert.Equal(t, uint(10), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, int64(1999), item.Price, "必须复制下单时的单价")
	assert.Equal(t, int64(3998), item.Subtotal, "小计 = 单价 * 数量")

	// 价格快照:商家改价不影响已构建的明细
	p.Price = 9999
	assert.Equal(t, int64(1999), item.Price)
	assert.Equal(t, int64(3998), item.Subtotal)
}

// TestAssemble 订单组装:汇总小计、附加明细
func TestAssemble(t *testing.T) {
	items := []Item{
		{ProductID: 10, Quantity: 2, Price: 1999, Subtotal: 3998},
		{ProductID: 20, Quantity: 1, Price: 5000, Subtotal: 5000},
	}

	o := Assemble(1, "ORD123456", StatusPending, "加急", items)

	assert.Equal(t, uint(1), o.UserID)
	assert.Equal(t, "ORD123456", o.OrderNo)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "加急", o.Remark)
	assert.Equal(t, int64(8998), o.Total, "总金额 = 各明细小计之和")
	assert.Len(t, o.Items, 2)
	assert.Equal(t, o.Total, o.CalculateTotal(), "冗余Total与明细实算一致")
	assert.False(t, o.CreatedAt.IsZero())
}

// TestAssemble_EmptyItems 空明细组装出零元订单(上游协调者负责拒绝空明细)
func TestAssemble_EmptyItems(t *testing.T) {
	o := Assemble(1, "ORD1", StatusPending, "", nil)

	assert.Zero(t, o.Total)
	assert.Empty(t, o.Items)
}
