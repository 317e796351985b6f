package telegram

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RejectedError represents a call the Bot API answered with 2xx but
// marked as failed ("ok" false or absent in the result envelope).
// The full decoded body is preserved so callers can relay it verbatim.
type RejectedError struct {
	// Body is the complete response body as returned upstream
	Body json.RawMessage
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	if desc := e.Description(); desc != "" {
		return fmt.Sprintf("bot api rejected the call: %s", desc)
	}
	return "bot api rejected the call"
}

// Description extracts the "description" field from the rejected body,
// or returns an empty string if the body has none.
func (e *RejectedError) Description() string {
	var partial struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(e.Body, &partial); err != nil {
		return ""
	}
	return partial.Description
}

// StatusError represents a non-2xx upstream status. Both the status
// code and the body are captured at the moment the response is read,
// never re-derived afterwards. Body is nil when the upstream body was
// not valid JSON; Message carries a sanitized summary in that case.
type StatusError struct {
	// StatusCode is the upstream HTTP status
	StatusCode int

	// Body is the upstream JSON body, nil if undecodable
	Body json.RawMessage

	// Message summarizes the failure when Body is nil
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("bot api returned status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// UnreachableError represents a transport-level failure: timeout, DNS
// failure, connection refused, or a malformed 2xx response body.
// The cause is sanitized before wrapping so the bot token never
// appears in error strings or logs.
type UnreachableError struct {
	// Cause is the sanitized underlying error
	Cause error
}

// Error implements the error interface.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("bot api unreachable: %v", e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *UnreachableError) Unwrap() error {
	return e.Cause
}
