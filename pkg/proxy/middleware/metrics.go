package middleware

import (
	"net/http"
	"time"

	"relay-hq/courier/pkg/telemetry/metrics"
)

// MetricsMiddleware records request count and handling latency for every
// inbound HTTP request.
//
// The path label uses the request path for matched routes and a fixed
// "unmatched" label for 404s, so arbitrary probe paths cannot inflate
// metric cardinality.
//
// Example usage:
//
//	handler = MetricsMiddleware(collector)(handler)
func MetricsMiddleware(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			path := r.URL.Path
			if rw.statusCode == http.StatusNotFound {
				path = "unmatched"
			}

			collector.RecordHTTPRequest(path, r.Method, rw.statusCode, time.Since(startTime))
		})
	}
}
