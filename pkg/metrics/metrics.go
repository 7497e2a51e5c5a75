// Package metrics holds the Prometheus collectors shared by the services.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "route", "method"},
	)

	AnalyticsOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_operation_duration_seconds",
			Help:    "Duration of analytics computations including their queries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	AnalyticsOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_operation_errors_total",
			Help: "Analytics computations that returned an error, by kind",
		},
		[]string{"operation", "kind"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	ModerationEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_events_published_total",
			Help: "Moderation events published to the broker, by type and result",
		},
		[]string{"type", "result"},
	)

	ModerationEventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_events_consumed_total",
			Help: "Moderation events handled by consumers, by type and result",
		},
		[]string{"type", "result"},
	)
)

// ObserveOperation records the duration of an analytics operation started at start.
func ObserveOperation(operation string, start time.Time) {
	AnalyticsOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// GinMiddleware records request count and latency per matched route.
func GinMiddleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(service, route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(service, route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
