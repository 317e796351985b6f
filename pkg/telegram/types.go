package telegram

import "time"

// Params is the JSON object sent as the body of a Bot API call.
// A nil Params is encoded as an empty JSON object.
type Params map[string]any

// Config holds the upstream client configuration.
type Config struct {
	// BaseURL is the Bot API base URL (default https://api.telegram.org)
	BaseURL string

	// Timeout is the total per-call timeout
	Timeout time.Duration

	// MaxIdleConns is the connection pool size
	MaxIdleConns int

	// MaxIdleConnsPerHost is the per-host connection pool size
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long idle connections are kept
	IdleConnTimeout time.Duration
}

// Message describes a sendMessage call.
// Optional fields are pointers: a nil field is omitted from the
// upstream params entirely, it is never sent as null.
type Message struct {
	// ChatID is the target chat identifier
	ChatID string

	// Text is the message text
	Text string

	// ParseMode selects text formatting (Markdown, HTML)
	ParseMode *string

	// DisableWebPagePreview disables link previews
	DisableWebPagePreview *bool

	// DisableNotification sends the message silently
	DisableNotification *bool
}

// params builds the upstream request body for the message.
func (m Message) params() Params {
	p := Params{
		"chat_id": m.ChatID,
		"text":    m.Text,
	}
	if m.ParseMode != nil {
		p["parse_mode"] = *m.ParseMode
	}
	if m.DisableWebPagePreview != nil {
		p["disable_web_page_preview"] = *m.DisableWebPagePreview
	}
	if m.DisableNotification != nil {
		p["disable_notification"] = *m.DisableNotification
	}
	return p
}

// envelope is the partial decode of the Bot API result wrapper.
// The OK pointer distinguishes "ok": false from a missing field;
// both count as a rejected call.
type envelope struct {
	OK *bool `json:"ok"`
}
