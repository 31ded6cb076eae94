package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体,两者同生共死:
//    必须在同一事务中创建,不允许只存在一半
// 2. OrderNo是业务主键,数据库唯一索引保证全局唯一
// 3. Total冗余存储明细小计之和(防止改价攻击,避免重复计算)
type Order struct {
	ID        uint
	OrderNo   string // 订单号(业务主键,全局唯一)
	UserID    uint   // 买家用户ID
	Total     int64  // 订单总金额(分),等于所有明细Subtotal之和
	Status    Status // 订单状态
	Remark    string // 买家备注(可选)
	Items     []Item // 订单明细(聚合内的子实体)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item 订单明细项
// 设计说明:
// 1. 不是独立聚合根,必须通过Order访问
// 2. Price记录"下单时的单价"(历史价格快照),商家改价不影响历史订单
// 3. Subtotal = Price * Quantity,落库时一并冗余
// 4. 只保存ProductID,不持有Product对象(避免跨聚合引用)
type Item struct {
	ID        uint
	OrderID   uint  // 所属订单ID(订单落库后回填)
	ProductID uint  // 商品ID
	Quantity  int   // 购买数量
	Price     int64 // 下单时的单价(分)
	Subtotal  int64 // 小计(分) = Price * Quantity
}

// CalculateTotal 根据明细实时计算订单总金额
// 用于校验Total冗余字段与明细是否一致
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户(权限校验)
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机设计,防止非法状态跳转(如"已送达"跳回"待支付")
func (o *Order) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusPending:   {StatusPaid, StatusCancelled},    // 待支付→已支付/已取消
		StatusPaid:      {StatusShipped, StatusCancelled}, // 已支付→已发货/已取消(退款)
		StatusShipped:   {StatusDelivered},                // 已发货→已送达
		StatusDelivered: {},                               // 终态
		StatusCancelled: {},                               // 终态
	}

	allowedTargets, exists := transitions[o.Status]
	if !exists {
		return false
	}

	for _, allowed := range allowedTargets {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}
