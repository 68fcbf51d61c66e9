// internal/metrics/metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SubscriptionMetrics counts lifecycle events by plan and duration.
type SubscriptionMetrics interface {
	IncCreated(planID, duration string)
	IncCancelled(planID, duration string)
}

type subscriptionMetrics struct {
	created   *prometheus.CounterVec
	cancelled *prometheus.CounterVec
}

func NewSubscriptionMetrics(registry *prometheus.Registry) SubscriptionMetrics {
	created := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriptions_created_total",
			Help: "The total number of created subscriptions",
		},
		[]string{"plan_id", "duration"},
	)

	cancelled := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriptions_cancelled_total",
			Help: "The total number of cancelled subscriptions",
		},
		[]string{"plan_id", "duration"},
	)

	return &subscriptionMetrics{created: created, cancelled: cancelled}
}

func (m *subscriptionMetrics) IncCreated(planID, duration string) {
	m.created.WithLabelValues(planID, duration).Inc()
}

func (m *subscriptionMetrics) IncCancelled(planID, duration string) {
	m.cancelled.WithLabelValues(planID, duration).Inc()
}

// HTTPMetrics observes request counts and latency per route.
type HTTPMetrics interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

type httpMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewHTTPMetrics(registry *prometheus.Registry) HTTPMetrics {
	requests := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	latency := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	return &httpMetrics{requests: requests, latency: latency}
}

func (m *httpMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, path).Observe(duration.Seconds())
}
