package metrics

import (
	"time"

	"relay-hq/courier/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the main orchestrator for all Prometheus metrics in Courier.
// It manages metric registration and provides a unified interface for
// recording metrics across the HTTP surface and the upstream relay.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// HTTP surface metrics
	httpMetrics *HTTPMetrics

	// Bot API relay metrics
	upstreamMetrics *UpstreamMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created so
// the process exposes only Courier's own metrics.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = "courier"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "relay"
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		// Relay latency is dominated by the Bot API round trip (15s cap)
		cfg.RequestDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 15.0}
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.httpMetrics = NewHTTPMetrics(cfg, registry)
	c.upstreamMetrics = NewUpstreamMetrics(cfg, registry)

	return c
}

// RecordHTTPRequest records metrics for a completed inbound HTTP request.
//
// Parameters:
//   - path: Route pattern served (e.g., "/api/telegram/send")
//   - method: HTTP method
//   - status: Response status code
//   - duration: Total handling duration
func (c *Collector) RecordHTTPRequest(path, method string, status int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.httpMetrics.RecordRequest(path, method, status, duration)
}

// RecordUpstream records metrics for a Bot API call made on behalf of
// an inbound request.
//
// Parameters:
//   - apiMethod: Bot API method name (e.g., "getMe", "sendMessage")
//   - outcome: Call outcome ("success", "rejected", "upstream_error", "unreachable")
//   - duration: Round-trip duration of the upstream call
func (c *Collector) RecordUpstream(apiMethod, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.upstreamMetrics.RecordCall(apiMethod, outcome, duration)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
