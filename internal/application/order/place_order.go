package order

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/petstore/internal/domain/order"
	"github.com/xiebiao/petstore/internal/domain/product"
	"github.com/xiebiao/petstore/internal/domain/user"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
	"github.com/xiebiao/petstore/pkg/metrics"
)

// PlaceOrderUseCase 下单用例(订单创建协调者)
// 这是整个项目最核心的用例:在一个数据库事务内完成
// 库存预留、价格快照、订单图(订单头+明细)持久化,
// 要么全部成功,要么对外不产生任何可见变化。
type PlaceOrderUseCase struct {
	userRepo  user.Repository
	orderRepo order.Repository
	ledger    *product.Ledger
	txManager TxManager
	publisher EventPublisher // 可为nil(未接入MQ时)
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	userRepo user.Repository,
	orderRepo order.Repository,
	ledger *product.Ledger,
	txManager TxManager,
	publisher EventPublisher,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		ledger:    ledger,
		txManager: txManager,
		publisher: publisher,
	}
}

// PlaceOrderRequest 下单请求DTO
type PlaceOrderRequest struct {
	UserID  uint             // 买家用户ID
	OrderNo string           // 订单号,可选;未指定时自动生成
	Status  string           // 初始状态,可选;默认pending
	Remark  string           // 买家备注,可选
	Items   []PlaceOrderItem // 订单明细,按请求顺序预留库存
}

// PlaceOrderItem 订单明细项
type PlaceOrderItem struct {
	ProductID uint // 商品ID
	Quantity  int  // 购买数量
}

// OrderCreatedEvent 下单成功事件(发布到MQ供下游消费)
type OrderCreatedEvent struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Total     int64  `json:"total"`
	CreatedAt string `json:"created_at"`
}

// RoutingKeyOrderCreated 下单事件路由键
const RoutingKeyOrderCreated = "order.created"

// Execute 执行下单
//
// 流程:
//  1. 参数校验(明细非空、状态合法)
//  2. 校验用户存在(事务外快速失败,省一次无谓的事务开销)
//  3. 开启事务:
//     a. 逐条明细调用库存台账预留(行锁+检查+扣减)
//     b. 用商品快照构建明细(价格快照在此发生)
//     c. 未指定订单号时生成一个
//     d. 组装订单聚合并持久化(先订单头后明细,同一事务)
//  4. 提交后按ID回读订单(含明细),作为一致性快照返回
//  5. 发布order.created事件(尽力而为,失败只记日志)
//
// 任一步骤失败,整个事务回滚,错误原样向上传播;
// 本用例不做任何自动重试(订单号冲突的重试策略属于调用方)。
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*order.Order, error) {
	start := time.Now()

	// 1. 参数校验
	if len(req.Items) == 0 {
		return nil, order.ErrInvalidOrderItems
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	// 2. 校验用户存在(只读,放在事务外)
	if _, err := uc.userRepo.FindByID(ctx, req.UserID); err != nil {
		uc.observeFailure(err)
		return nil, err
	}

	// 3. 事务:预留库存→组装→持久化
	var placed *order.Order
	var reservedUnits int
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		reservedUnits = 0
		items := make([]order.Item, 0, len(req.Items))

		// 按请求顺序逐条预留
		// 任何一条失败(不存在/库存不足),之前的扣减随事务一起回滚
		for _, line := range req.Items {
			snapshot, err := uc.ledger.Reserve(txCtx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			items = append(items, order.NewItemFromProduct(snapshot, line.Quantity))
			reservedUnits += line.Quantity
		}

		// 订单号:调用方未指定时生成
		// 调用方自带的订单号同样要过唯一索引,没有旁路
		orderNo := req.OrderNo
		if orderNo == "" {
			orderNo = order.GenerateOrderNo()
		}

		newOrder := order.Assemble(req.UserID, orderNo, status, req.Remark, items)

		// 持久化:订单头先落库拿到ID,明细再带着ID落库
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		placed = newOrder
		return nil
	})

	if err != nil {
		uc.observeFailure(err)
		return nil, err
	}

	// 4. 提交后回读(含明细),返回一致性快照
	full, err := uc.orderRepo.FindByID(ctx, placed.ID)
	if err != nil {
		uc.observeFailure(err)
		return nil, err
	}

	uc.observeSuccess(full, reservedUnits, time.Since(start))

	// 5. 发布事件(失败不影响下单结果)
	if uc.publisher != nil {
		event := OrderCreatedEvent{
			OrderID:   full.ID,
			OrderNo:   full.OrderNo,
			UserID:    full.UserID,
			Total:     full.Total,
			CreatedAt: full.CreatedAt.Format(time.RFC3339),
		}
		if err := uc.publisher.Publish(ctx, RoutingKeyOrderCreated, event); err != nil {
			log.Printf("发布order.created事件失败: orderNo=%s err=%v", full.OrderNo, err)
		}
	}

	return full, nil
}

// observeSuccess 记录下单成功指标
func (uc *PlaceOrderUseCase) observeSuccess(o *order.Order, units int, elapsed time.Duration) {
	if metrics.OrdersCreatedTotal == nil {
		return
	}
	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderAmount.Observe(float64(o.Total))
	metrics.StockReservedTotal.Add(float64(units))
	metrics.OrderPlacementDuration.Observe(elapsed.Seconds())
}

// observeFailure 按失败原因记录指标
func (uc *PlaceOrderUseCase) observeFailure(err error) {
	if metrics.OrdersFailedTotal == nil {
		return
	}
	metrics.OrdersFailedTotal.WithLabelValues(failureReason(err)).Inc()
}

// failureReason 错误→指标标签(低基数)
func failureReason(err error) string {
	appErr := apperrors.GetAppError(err)
	switch appErr.Code {
	case apperrors.ErrCodeUserNotFound, apperrors.ErrCodeProductNotFound, apperrors.ErrCodeOrderNotFound:
		return metrics.ReasonNotFound
	case apperrors.ErrCodeInsufficientStock:
		return metrics.ReasonInsufficientStock
	case apperrors.ErrCodeOrderNoConflict:
		return metrics.ReasonConflict
	default:
		return metrics.ReasonStorage
	}
}
