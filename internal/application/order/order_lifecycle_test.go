package order

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/petstore/internal/domain/order"
	"github.com/xiebiao/petstore/internal/domain/user"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// memCache 内存订单缓存替身
type memCache struct {
	mu      sync.Mutex
	entries map[uint]*order.Order
	hits    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[uint]*order.Order)}
}

func (c *memCache) Get(ctx context.Context, orderID uint) (*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.entries[orderID]
	if !ok {
		return nil, nil
	}
	c.hits++
	return cloneOrder(o), nil
}

func (c *memCache) Set(ctx context.Context, o *order.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[o.ID] = cloneOrder(o)
	return nil
}

func (c *memCache) Invalidate(ctx context.Context, orderID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, orderID)
	return nil
}

// placeTestOrder 在fixture中下一单,供读写测试复用
func placeTestOrder(t *testing.T, f *fixture) *order.Order {
	t.Helper()
	placed, err := f.useCase.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items:  []PlaceOrderItem{{ProductID: 10, Quantity: 2}},
	})
	require.NoError(t, err)
	return placed
}

func TestGetOrder(t *testing.T) {
	f := newFixture()
	placed := placeTestOrder(t, f)
	cache := newMemCache()
	uc := NewGetOrderUseCase(&memOrderRepo{f.store}, cache)

	t.Run("首次读库并回填缓存", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), placed.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, placed.Total, got.Total)
		assert.Zero(t, cache.hits)

		// 第二次命中缓存
		got, err = uc.Execute(context.Background(), placed.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, placed.OrderNo, got.OrderNo)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("非本人订单无权限", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), placed.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("订单不存在", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 12345, 1)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("无缓存时直接读库", func(t *testing.T) {
		plain := NewGetOrderUseCase(&memOrderRepo{f.store}, nil)
		got, err := plain.Execute(context.Background(), placed.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, placed.ID, got.ID)
	})
}

func TestUpdateOrder(t *testing.T) {
	statusPaid := "paid"
	statusDelivered := "delivered"

	t.Run("合法状态流转并失效缓存", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)
		cache := newMemCache()
		cache.Set(context.Background(), placed)

		uc := NewUpdateOrderUseCase(&memOrderRepo{f.store}, cache)
		updated, err := uc.Execute(context.Background(), UpdateOrderRequest{
			OrderID: placed.ID,
			UserID:  1,
			Status:  &statusPaid,
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, updated.Status)

		// 缓存已失效
		cached, err := cache.Get(context.Background(), placed.ID)
		require.NoError(t, err)
		assert.Nil(t, cached)

		// 落库生效
		stored, err := (&memOrderRepo{f.store}).FindByID(context.Background(), placed.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, stored.Status)
	})

	t.Run("非法流转拒绝且不落库", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)

		// pending → delivered 不允许
		uc := NewUpdateOrderUseCase(&memOrderRepo{f.store}, nil)
		_, err := uc.Execute(context.Background(), UpdateOrderRequest{
			OrderID: placed.ID,
			UserID:  1,
			Status:  &statusDelivered,
		})

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)

		stored, err := (&memOrderRepo{f.store}).FindByID(context.Background(), placed.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, stored.Status, "失败的流转不能落库")
	})

	t.Run("只改备注不动状态", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)
		remark := "改送晚上"

		uc := NewUpdateOrderUseCase(&memOrderRepo{f.store}, nil)
		updated, err := uc.Execute(context.Background(), UpdateOrderRequest{
			OrderID: placed.ID,
			UserID:  1,
			Remark:  &remark,
		})

		require.NoError(t, err)
		assert.Equal(t, "改送晚上", updated.Remark)
		assert.Equal(t, order.StatusPending, updated.Status)
	})

	t.Run("空请求为no-op", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)

		uc := NewUpdateOrderUseCase(&memOrderRepo{f.store}, nil)
		updated, err := uc.Execute(context.Background(), UpdateOrderRequest{
			OrderID: placed.ID,
			UserID:  1,
		})

		require.NoError(t, err)
		assert.Equal(t, placed.Status, updated.Status)
		assert.Equal(t, placed.Remark, updated.Remark)
	})

	t.Run("非本人订单无权限", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)

		uc := NewUpdateOrderUseCase(&memOrderRepo{f.store}, nil)
		_, err := uc.Execute(context.Background(), UpdateOrderRequest{
			OrderID: placed.ID,
			UserID:  999,
			Status:  &statusPaid,
		})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("删除订单及明细,不回补库存", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)
		cache := newMemCache()
		cache.Set(context.Background(), placed)

		uc := NewDeleteOrderUseCase(&memOrderRepo{f.store}, cache)
		err := uc.Execute(context.Background(), placed.ID, 1)
		require.NoError(t, err)

		_, err = (&memOrderRepo{f.store}).FindByID(context.Background(), placed.ID)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)

		cached, err := cache.Get(context.Background(), placed.ID)
		require.NoError(t, err)
		assert.Nil(t, cached)

		assert.Equal(t, 3, f.stockOf(10), "删除不回补库存")
	})

	t.Run("非本人订单无权限", func(t *testing.T) {
		f := newFixture()
		placed := placeTestOrder(t, f)

		uc := NewDeleteOrderUseCase(&memOrderRepo{f.store}, nil)
		err := uc.Execute(context.Background(), placed.ID, 999)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Equal(t, 1, f.orderCount())
	})
}

func TestListOrders(t *testing.T) {
	f := newFixture()
	placeTestOrder(t, f)

	// 另一个用户的订单不应出现在结果里
	f.store.users[2] = &user.User{ID: 2, Email: "bob@example.com", Nickname: "bob"}
	_, err := f.useCase.Execute(context.Background(), PlaceOrderRequest{
		UserID: 2,
		Items:  []PlaceOrderItem{{ProductID: 10, Quantity: 1}},
	})
	require.NoError(t, err)

	uc := NewListOrdersUseCase(&memOrderRepo{f.store})
	orders, total, err := uc.Execute(context.Background(), 1, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(1), orders[0].UserID)
}
