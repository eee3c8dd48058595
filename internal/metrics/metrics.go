// Package metrics регистрирует метрики Prometheus сервиса check-in.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geo_checkin"

// Результаты операций для меток result
const (
	ResultAccepted = "accepted"
	ResultCooldown = "cooldown"
	ResultInvalid  = "invalid"
	ResultError    = "error"
	ResultOK       = "ok"

	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultSkipped   = "skipped"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CheckInsTotal считает попытки check-in по результату
	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Check-in attempts by result",
		},
		[]string{"result"},
	)

	// NearbyQueriesTotal считает запросы поиска пользователей рядом
	NearbyQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearby_queries_total",
			Help:      "Nearby user queries by result",
		},
		[]string{"result"},
	)

	// NearbyResultSize - размер выдачи поиска рядом
	NearbyResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nearby_result_size",
			Help:      "Number of users returned by a nearby query",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// WebhookDeliveriesTotal считает доставку вебхуков
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Webhook deliveries by result",
		},
		[]string{"result"},
	)

	// RateLimitedTotal считает запросы, отклоненные лимитером
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter",
		},
	)
)

// Middleware записывает метрики HTTP-запросов gin
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Шаблон маршрута вместо сырого URL, чтобы не раздувать кардинальность
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
