package order

// Status 订单状态
// 设计说明:
// 1. 数据库用int存储(节省空间,便于索引),对外序列化为字符串
// 2. 状态值1-5递增,便于理解流转方向
type Status int

const (
	StatusPending   Status = 1 // 待支付
	StatusPaid      Status = 2 // 已支付
	StatusShipped   Status = 3 // 已发货
	StatusDelivered Status = 4 // 已送达
	StatusCancelled Status = 5 // 已取消
)

// String 实现Stringer接口,返回对外的状态字符串
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPaid:
		return "paid"
	case StatusShipped:
		return "shipped"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsValid 是否为合法状态值
func (s Status) IsValid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// ParseStatus 解析状态字符串
// 空字符串视为未指定,返回StatusPending(下单默认状态)
func ParseStatus(s string) (Status, error) {
	switch s {
	case "":
		return StatusPending, nil
	case "pending":
		return StatusPending, nil
	case "paid":
		return StatusPaid, nil
	case "shipped":
		return StatusShipped, nil
	case "delivered":
		return StatusDelivered, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return 0, ErrInvalidStatus
	}
}
