package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/petstore/internal/domain/order"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// OrderCache 订单读缓存
// 1. 整单JSON缓存(含明细),Key设计: order:{order_id}
// 2. 未命中返回(nil, nil),由调用方回源数据库
// 3. 订单状态变更、删除时由调用方失效
type OrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOrderCache 创建订单缓存
func NewOrderCache(client *redis.Client) *OrderCache {
	return &OrderCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func orderKey(orderID uint) string {
	return fmt.Sprintf("order:%d", orderID)
}

// Get 按订单ID查缓存,未命中返回(nil, nil)
func (c *OrderCache) Get(ctx context.Context, orderID uint) (*order.Order, error) {
	data, err := c.client.Get(ctx, orderKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "读取订单缓存失败")
	}

	var o order.Order
	if err := json.Unmarshal(data, &o); err != nil {
		// 缓存数据损坏按未命中处理,同时清掉脏数据
		c.client.Del(ctx, orderKey(orderID))
		return nil, nil
	}
	return &o, nil
}

// Set 写入订单缓存
func (c *OrderCache) Set(ctx context.Context, o *order.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return apperrors.Wrap(err, "序列化订单失败")
	}

	if err := c.client.Set(ctx, orderKey(o.ID), data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入订单缓存失败")
	}
	return nil
}

// Invalidate 失效订单缓存(状态变更、删除后调用)
func (c *OrderCache) Invalidate(ctx context.Context, orderID uint) error {
	if err := c.client.Del(ctx, orderKey(orderID)).Err(); err != nil {
		return apperrors.Wrap(err, "失效订单缓存失败")
	}
	return nil
}
