package metrics

import (
	"time"

	"relay-hq/courier/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics tracks metrics for Bot API calls made by the relay.
//
// Metrics:
//   - courier_relay_upstream_requests_total: Total call count by api_method, outcome
//   - courier_relay_upstream_duration_seconds: Round-trip duration histogram
//
// The api_method label carries the Bot API method name (getMe,
// getMyCommands, sendMessage, or whatever /api/telegram/call forwarded),
// so cardinality stays bounded by the Bot API's own method surface.
type UpstreamMetrics struct {
	// Total upstream call count
	callsTotal *prometheus.CounterVec

	// Upstream round-trip duration histogram
	callDuration *prometheus.HistogramVec
}

// NewUpstreamMetrics creates and registers upstream metrics with the provided registry.
func NewUpstreamMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *UpstreamMetrics {
	um := &UpstreamMetrics{
		callsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "upstream_requests_total",
				Help:      "Total number of Bot API calls made",
			},
			[]string{"api_method", "outcome"},
		),

		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "upstream_duration_seconds",
				Help:      "Round-trip duration of Bot API calls in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"api_method"},
		),
	}

	registry.MustRegister(
		um.callsTotal,
		um.callDuration,
	)

	return um
}

// RecordCall records metrics for a completed Bot API call.
func (um *UpstreamMetrics) RecordCall(apiMethod, outcome string, duration time.Duration) {
	um.callsTotal.WithLabelValues(apiMethod, outcome).Inc()
	um.callDuration.WithLabelValues(apiMethod).Observe(duration.Seconds())
}
