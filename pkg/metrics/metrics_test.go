package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics_Idempotent 重复初始化不应panic（promauto重复注册会panic）
func TestInitMetrics_Idempotent(t *testing.T) {
	InitMetrics()
	InitMetrics() // 第二次调用应被initialized标记挡住

	if OrdersCreatedTotal == nil {
		t.Fatal("OrdersCreatedTotal未初始化")
	}
}

// TestOrderCounters 订单计数器递增
func TestOrderCounters(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(OrdersCreatedTotal)
	OrdersCreatedTotal.Inc()
	OrdersCreatedTotal.Inc()
	after := testutil.ToFloat64(OrdersCreatedTotal)

	if after-before != 2 {
		t.Errorf("期望递增2次，实际%.0f次", after-before)
	}
}

// TestFailureReasonLabels 失败计数按原因分维度统计
func TestFailureReasonLabels(t *testing.T) {
	InitMetrics()

	OrdersFailedTotal.WithLabelValues(ReasonInsufficientStock).Inc()
	OrdersFailedTotal.WithLabelValues(ReasonInsufficientStock).Inc()
	OrdersFailedTotal.WithLabelValues(ReasonConflict).Inc()

	stock := testutil.ToFloat64(OrdersFailedTotal.WithLabelValues(ReasonInsufficientStock))
	conflict := testutil.ToFloat64(OrdersFailedTotal.WithLabelValues(ReasonConflict))

	if stock < 2 {
		t.Errorf("insufficient_stock计数期望>=2，实际%.0f", stock)
	}
	if conflict < 1 {
		t.Errorf("conflict计数期望>=1，实际%.0f", conflict)
	}
}
