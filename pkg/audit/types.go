package audit

import (
	"context"
	"time"
)

// Record is the audit trail entry for a single relayed Bot API call.
// It captures routing metadata and timing but never the bot token
// itself; the token is represented only by its digest.
type Record struct {
	// ID is a UUID v4 assigned by the recorder.
	ID string `json:"id"`

	// RequestID correlates the record with request logs.
	RequestID string `json:"request_id"`

	// Time is when the inbound request started.
	Time time.Time `json:"time"`

	// RecordedTime is when the record was created.
	RecordedTime time.Time `json:"recorded_time"`

	// Endpoint is the inbound HTTP path (e.g. "/api/telegram/send").
	Endpoint string `json:"endpoint"`

	// APIMethod is the Bot API method relayed (e.g. "sendMessage").
	APIMethod string `json:"api_method"`

	// Outcome classifies the result: "success", "invalid_request",
	// "rejected", "upstream_error", "unreachable", "internal_error".
	Outcome string `json:"outcome"`

	// StatusCode is the HTTP status returned to the client.
	StatusCode int `json:"status_code"`

	// UpstreamStatus is the Bot API HTTP status, 0 when no upstream
	// response was received.
	UpstreamStatus int `json:"upstream_status"`

	// LatencyMS is the total handling time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// TokenDigest is the SHA-256 digest of the bot token, identifying
	// the bot without exposing the credential.
	TokenDigest string `json:"token_digest"`

	// Error is the sanitized error text for failed calls.
	Error string `json:"error,omitempty"`
}

// Storage defines the interface for audit storage backends.
// Implementations must be thread-safe and support concurrent access.
type Storage interface {
	// Store persists an audit record.
	Store(ctx context.Context, record *Record) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// DeleteBefore removes records older than the cutoff time.
	// Returns the number of records deleted.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteOldest removes the oldest records so that at most keep
	// records remain. Returns the number of records deleted.
	DeleteOldest(ctx context.Context, keep int64) (int64, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the storage backend.
	Close() error
}
