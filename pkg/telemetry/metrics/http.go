package metrics

import (
	"strconv"
	"time"

	"relay-hq/courier/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics tracks metrics for the inbound HTTP surface.
//
// Metrics:
//   - courier_relay_requests_total: Total request count by path, method, status
//   - courier_relay_request_duration_seconds: Request duration histogram
type HTTPMetrics struct {
	// Total request count
	requestsTotal *prometheus.CounterVec

	// Request duration histogram
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers HTTP metrics with the provided registry.
func NewHTTPMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *HTTPMetrics {
	hm := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"path", "method", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP request handling in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"path", "method"},
		),
	}

	registry.MustRegister(
		hm.requestsTotal,
		hm.requestDuration,
	)

	return hm
}

// RecordRequest records metrics for a completed HTTP request.
func (hm *HTTPMetrics) RecordRequest(path, method string, status int, duration time.Duration) {
	hm.requestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	hm.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}
