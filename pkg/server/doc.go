// Package server provides the HTTP relay server.
//
// This package ties together the handlers, middleware, and telemetry
// components and provides server lifecycle management including start
// and graceful shutdown.
//
// # Basic Usage
//
//	srv := server.NewServer(server.Dependencies{
//	    Config:  cfg,
//	    BotAPI:  telegram.NewClient(clientCfg),
//	    Auditor: recorder,
//	    Store:   store,
//	    Checker: checker,
//	    Metrics: collector,
//	    Logger:  logger,
//	})
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
//   - GET  /                       service banner
//   - GET  /api/hello              API liveness greeting
//   - GET  /test                   backend/database diagnostics
//   - POST /api/telegram/validate  relay getMe
//   - POST /api/telegram/commands  relay getMyCommands
//   - POST /api/telegram/send      relay sendMessage
//   - POST /api/telegram/call      relay any Bot API method
//   - GET  /health                 readiness checks (configurable path)
//   - GET  /metrics                Prometheus exposition (configurable path)
//
// # Graceful Shutdown
//
// The server shuts down on SIGTERM/SIGINT or context cancellation:
//  1. Stops accepting new connections
//  2. Waits for active requests to complete (up to shutdown timeout)
//  3. Forces connection closure if the timeout is exceeded
//
// # Middleware Chain
//
// Requests pass through the following middleware (innermost to outermost):
//  1. Timeout: enforces per-request timeout
//  2. CORS: adds Cross-Origin Resource Sharing headers
//  3. RequestID: generates unique request ID for correlation
//  4. Metrics: records request count and latency
//  5. Logging: logs request/response details
//  6. Recovery: recovers from panics and returns 500
package server
