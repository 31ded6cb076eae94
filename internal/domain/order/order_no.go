package order

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNo 生成订单号
// 订单号设计原则:
// 1. 高概率唯一(最终由数据库唯一索引兜底,冲突方换号重试)
// 2. 时间有序(便于分库分表)
// 3. 不可预测(防止恶意遍历)
//
// 格式:ORD + 毫秒时间戳 + 6位随机数
// 示例:ORD1735689600123042517
//
// 生成本身永不失败,不访问任何外部状态;
// 并发调用间不做协调,冲突留给存储层的唯一约束处理。
func GenerateOrderNo() string {
	timestamp := time.Now().UnixMilli()
	random := rand.Intn(1000000) // 6位随机数
	return fmt.Sprintf("ORD%d%06d", timestamp, random)
}
