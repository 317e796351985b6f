// Package middleware provides HTTP middleware for cross-cutting concerns.
//
// This package implements middleware functions that handle common
// functionality across all HTTP requests: request ID generation, logging,
// metrics, CORS, panic recovery, and timeout enforcement.
//
// # Middleware Chain
//
// Middleware functions are chained in a specific order:
//
//	handler = Recovery(Logging(Metrics(RequestID(CORS(Timeout(mux))))))
//
// Order (innermost to outermost):
//  1. Timeout: Enforce per-request timeout
//  2. CORS: Add Cross-Origin Resource Sharing headers
//  3. RequestID: Generate and propagate request ID
//  4. Metrics: Record request count and latency
//  5. Logging: Log request/response details
//  6. Recovery: Recover from panics
//
// # Request ID
//
// RequestIDMiddleware generates a 32-character hex ID for each request,
// honors a client-provided X-Request-ID, and stores the ID in the context
// so every log line for the request carries a request_id field.
//
// # Recovery
//
// RecoveryMiddleware catches panics in handlers and converts them to
// HTTP 500 with a JSON body:
//
//	{"description": "an internal error occurred"}
//
// The panic stack trace is logged but not exposed to clients.
//
// # Timeout
//
// TimeoutMiddleware cancels the request context after the configured
// duration and answers 504. The configured duration must exceed the
// upstream Bot API timeout so upstream failures keep their 502 shape.
package middleware
