package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP 请求计数器
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP 请求延迟直方图
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// 活跃请求数
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// 数据库连接池指标（需要从外部注入）
	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// WebSocket 连接数
	wsConnectionsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Total number of WebSocket connections",
		},
		[]string{"role"}, // volunteer, organization, donor, admin
	)

	// 业务指标
	offersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "offers_created_total",
			Help: "Total number of surplus offers created",
		},
	)

	matchesConfirmedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matches_confirmed_total",
			Help: "Total number of offer-organization matches confirmed",
		},
	)

	deliveriesCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deliveries_completed_total",
			Help: "Total number of deliveries completed",
		},
	)
)

// PrometheusMiddleware 记录 HTTP 请求指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 跳过 /metrics 和 /health 端点
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// 如果路径为空（404），使用实际路径
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler 返回 Prometheus 指标处理器
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateDBMetrics 更新数据库连接池指标（应该定期调用）
func UpdateDBMetrics(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}

// UpdateWSMetrics 更新 WebSocket 连接数指标
func UpdateWSMetrics(role string, count int) {
	wsConnectionsTotal.WithLabelValues(role).Set(float64(count))
}

// RecordOfferCreated 记录发布单创建
func RecordOfferCreated() {
	offersCreatedTotal.Inc()
}

// RecordMatchConfirmed 记录匹配确认
func RecordMatchConfirmed() {
	matchesConfirmedTotal.Inc()
}

// RecordDeliveryCompleted 记录配送完成
func RecordDeliveryCompleted() {
	deliveriesCompletedTotal.Inc()
}
