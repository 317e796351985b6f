// Package handlers implements the HTTP endpoints of the relay.
//
// # Endpoints
//
//   - GET  /                       service banner
//   - GET  /api/hello              API liveness greeting
//   - GET  /test                   backend/database diagnostics
//   - POST /api/telegram/validate  getMe
//   - POST /api/telegram/commands  getMyCommands
//   - POST /api/telegram/send      sendMessage
//   - POST /api/telegram/call      any Bot API method
//
// # Relay semantics
//
// Each telegram endpoint validates its body before touching the
// upstream; a missing required field answers 400 and no Bot API call
// happens. A successful call's response body is returned verbatim. A
// call the Bot API rejects ("ok" false or absent) answers 400 with the
// upstream body verbatim; a non-2xx upstream status is propagated
// as-is; a transport failure answers 502.
//
// Every telegram call is recorded in metrics and the audit trail with
// the token represented only by its SHA-256 digest.
package handlers
