package types

import "encoding/json"

// TokenRequest is the body of the validate and commands endpoints.
type TokenRequest struct {
	// Token is the bot credential, relayed upstream and never logged.
	Token string `json:"token"`
}

// Validate checks required fields.
func (r *TokenRequest) Validate() error {
	if r.Token == "" {
		return &ValidationError{Field: "token", Message: "token is required"}
	}
	return nil
}

// SendMessageRequest is the body of the send endpoint.
// Optional fields use pointers: a nil field is never forwarded
// upstream, not even as null.
type SendMessageRequest struct {
	// Token is the bot credential.
	Token string `json:"token"`

	// ChatID is the target chat identifier.
	ChatID string `json:"chat_id"`

	// Text is the message text.
	Text string `json:"text"`

	// ParseMode selects text formatting (Markdown, HTML).
	ParseMode *string `json:"parse_mode"`

	// DisableWebPagePreview disables link previews.
	DisableWebPagePreview *bool `json:"disable_web_page_preview"`

	// DisableNotification sends the message silently.
	DisableNotification *bool `json:"disable_notification"`
}

// Validate checks required fields.
func (r *SendMessageRequest) Validate() error {
	if r.Token == "" {
		return &ValidationError{Field: "token", Message: "token is required"}
	}
	if r.ChatID == "" {
		return &ValidationError{Field: "chat_id", Message: "chat_id is required"}
	}
	if r.Text == "" {
		return &ValidationError{Field: "text", Message: "text is required"}
	}
	return nil
}

// CallRequest is the body of the generic call endpoint. Params are
// kept as raw JSON so arbitrary method arguments pass through
// byte-for-byte, with no intermediate decode/re-encode.
type CallRequest struct {
	// Token is the bot credential.
	Token string `json:"token"`

	// Method is the Bot API method name (e.g. "getMe", "sendPhoto").
	Method string `json:"method"`

	// Params are the method arguments, forwarded verbatim. Absent
	// params are sent upstream as an empty object.
	Params map[string]json.RawMessage `json:"params"`
}

// Validate checks required fields.
func (r *CallRequest) Validate() error {
	if r.Token == "" {
		return &ValidationError{Field: "token", Message: "token is required"}
	}
	if r.Method == "" {
		return &ValidationError{Field: "method", Message: "method is required"}
	}
	return nil
}
