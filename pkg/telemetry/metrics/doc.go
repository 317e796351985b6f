// Package metrics provides Prometheus instrumentation for Courier.
//
// The Collector owns a private registry and two metric groups: HTTPMetrics
// for the inbound HTTP surface (request counts and handling latency by
// route) and UpstreamMetrics for Bot API calls (call counts and round-trip
// latency by api_method and outcome).
//
// # Basic Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	// in the request path
//	collector.RecordHTTPRequest("/api/telegram/send", "POST", 200, elapsed)
//	collector.RecordUpstream("sendMessage", "success", rtt)
//
//	// exposition
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
// All metrics use the configured namespace and subsystem (default
// courier_relay_*). Recording is a no-op when metrics are disabled in
// the configuration.
package metrics
