package order

import (
	"context"

	"github.com/xiebiao/petstore/internal/domain/order"
)

// TxManager 事务管理器接口
// 设计说明:
// 1. fn内的所有Repository操作都在同一事务中执行(事务DB通过context传递)
// 2. fn返回error或panic时回滚,返回nil时提交
// 3. 连接资源在提交、回滚、异常任何退出路径上都必须归还
// 4. 用例层只依赖接口,单元测试可替换为内存事务替身
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 事件发布接口(RabbitMQ实现)
// 发布失败不影响主流程,由调用方记录日志
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// Cache 订单读缓存接口(Redis实现)
// Get未命中返回(nil, nil);缓存故障按未命中处理,不阻塞读
type Cache interface {
	Get(ctx context.Context, orderID uint) (*order.Order, error)
	Set(ctx context.Context, o *order.Order) error
	Invalidate(ctx context.Context, orderID uint) error
}
