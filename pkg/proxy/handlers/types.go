package handlers

import (
	"context"
	"encoding/json"
	"time"

	"relay-hq/courier/pkg/audit"
	"relay-hq/courier/pkg/telegram"
)

// BotAPI is the interface for the upstream Bot API client.
type BotAPI interface {
	Invoke(ctx context.Context, token, method string, params telegram.Params) (json.RawMessage, error)
	Validate(ctx context.Context, token string) (json.RawMessage, error)
	FetchCommands(ctx context.Context, token string) (json.RawMessage, error)
	SendMessage(ctx context.Context, token string, msg telegram.Message) (json.RawMessage, error)
}

// Auditor records audit entries for relayed calls.
type Auditor interface {
	Record(record *audit.Record) error
}

// UpstreamRecorder records metrics for Bot API calls.
type UpstreamRecorder interface {
	RecordUpstream(apiMethod, outcome string, duration time.Duration)
}

// DiagnosticsStore is the storage view used by the diagnostics endpoint.
type DiagnosticsStore interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
