// Courier is a lightweight HTTP relay for the Telegram Bot API.
//
// It exposes a small REST surface that forwards calls to the Bot API,
// providing:
//   - Token validation, command listing, and message sending endpoints
//   - A generic relay for any Bot API method
//   - Verbatim propagation of upstream responses and errors
//   - Asynchronous audit trail with retention pruning
//   - Prometheus metrics and health checks
//
// Usage:
//
//	# Start server with default configuration
//	courier run
//
//	# Start with custom configuration file
//	courier run --config /path/to/config.yaml
//
//	# Validate config without starting the server
//	courier run --dry-run
//
//	# Show version information
//	courier version
package main

func main() {
	Execute()
}
