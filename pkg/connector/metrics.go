package connector

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sweetpay_request_duration_seconds",
			Help:    "Duration of payment API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweetpay_requests_total",
			Help: "Total payment API requests by method and HTTP status",
		},
		[]string{"method", "status"},
	)

	transportErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweetpay_transport_errors_total",
			Help: "Total transport-level failures by kind",
		},
		[]string{"kind"},
	)

	rateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweetpay_rate_limit_wait_seconds_total",
		Help: "Total time spent waiting on the client-side rate limiter",
	})
)

// recordRequest records metrics for one completed exchange.
func recordRequest(method string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	requestsTotal.WithLabelValues(method, status).Inc()
	requestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}

// recordTransportError records a transport failure by error kind.
func recordTransportError(kind string) {
	transportErrors.WithLabelValues(kind).Inc()
}

// recordRateLimitWait records time spent blocked on the rate limiter.
func recordRateLimitWait(wait time.Duration) {
	if wait > time.Millisecond {
		rateLimitWaits.Add(wait.Seconds())
	}
}
