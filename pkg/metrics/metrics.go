// Package metrics 提供基于Prometheus的业务指标收集
//
// 指标命名规范：
// 1. Counter以`_total`结尾（orders_created_total）
// 2. Histogram以单位结尾（order_placement_duration_seconds）
// 3. 标签只用低基数维度（reason、routing_key），不要用user_id等高基数值
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 业务代码中
//	metrics.OrdersCreatedTotal.Inc()
//	metrics.OrderPlacementDuration.Observe(time.Since(start).Seconds())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// OrdersCreatedTotal 下单成功总数（Counter）
	OrdersCreatedTotal prometheus.Counter

	// OrdersFailedTotal 下单失败总数（Counter）
	// 标签：reason（not_found/insufficient_stock/conflict/storage）
	OrdersFailedTotal *prometheus.CounterVec

	// OrderPlacementDuration 下单耗时（Histogram）
	// 覆盖悲观锁等待场景，桶放宽到5秒
	OrderPlacementDuration prometheus.Histogram

	// OrderAmount 订单金额分布（Histogram，单位:分）
	OrderAmount prometheus.Histogram

	// StockReservedTotal 库存扣减总量（Counter）
	StockReservedTotal prometheus.Counter

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：routing_key、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，使用promauto自动注册到默认Registry
func InitMetrics() {
	// 防止重复初始化（promauto重复注册会panic）
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petstore_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petstore_http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petstore_orders_created_total",
			Help: "下单成功总数",
		},
	)

	OrdersFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petstore_orders_failed_total",
			Help: "下单失败总数",
		},
		[]string{"reason"},
	)

	OrderPlacementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "petstore_order_placement_duration_seconds",
			Help:    "下单耗时（秒），包含事务与行锁等待",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "petstore_order_amount_fen",
			Help:    "订单金额分布（分）",
			Buckets: []float64{1000, 5000, 10000, 50000, 100000, 500000},
		},
	)

	StockReservedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petstore_stock_reserved_total",
			Help: "库存扣减总量（件）",
		},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petstore_messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)
}

// 失败原因标签值（与错误分类对应）
const (
	ReasonNotFound          = "not_found"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonConflict          = "conflict"
	ReasonStorage           = "storage"
)
