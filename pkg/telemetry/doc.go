// Package telemetry provides observability for Courier.
//
// # Components
//
//   - logging: Structured logging with bot token redaction
//   - metrics: Prometheus metrics collection
//   - health: Liveness and readiness endpoints
//
// # Usage
//
//	logger, _ := logging.New(logging.Config{Level: "info", Format: "json", RedactTokens: true})
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	checker := health.New(cfg.Telemetry.Health.CheckTimeout)
//
// # Token Protection
//
// Bot tokens authenticate every upstream call and must never reach log
// output. The logging subpackage redacts token shapes from all logged
// fields; see the logging package documentation for the patterns covered.
package telemetry
