// Package proxy implements the HTTP relay surface in front of the
// Telegram Bot API.
//
// # Overview
//
// The package is organized into several layers:
//
//  1. Request parsing - size-limited JSON decoding plus validation,
//     answered with 400 before any upstream call
//  2. Error mapping - HandleError converts client errors into the
//     status code and body shape the caller receives
//  3. Handlers - one handler per relay endpoint (see handlers)
//  4. Middleware - recovery, logging, metrics, request IDs, CORS
//     (see middleware)
//
// # Error Contract
//
// The relay preserves upstream failures faithfully. A call the Bot API
// rejects ("ok" false) answers 400 with the upstream body untouched; a
// non-2xx upstream status is propagated with its body when that body
// is JSON. Only transport failures and validation errors synthesize a
// body, always the single-field descriptor shape:
//
//	{"description": "bot api unreachable: ..."}
package proxy
