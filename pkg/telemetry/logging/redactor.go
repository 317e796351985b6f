package logging

import (
	"regexp"
	"strings"
)

// Redactor scrubs bot credentials from log fields. Bot tokens have a
// recognizable shape (numeric bot ID, colon, secret) and also appear
// embedded in Bot API URL paths, so both forms are covered.
type Redactor struct {
	patterns []*redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Pattern names.
const (
	PatternBotToken    = "bot_token"
	PatternBotURL      = "bot_url"
	PatternBearerToken = "bearer_token"
)

// NewRedactor creates a Redactor with the built-in credential patterns.
func NewRedactor() *Redactor {
	patterns := []struct {
		name        string
		regex       string
		replacement string
	}{
		// Bot API URL paths carry the full token in the path segment.
		{
			name:        PatternBotURL,
			regex:       `/bot\d+:[A-Za-z0-9_-]+`,
			replacement: "/bot***",
		},

		// Bare bot tokens: "<bot_id>:<secret>".
		{
			name:        PatternBotToken,
			regex:       `\b\d{6,}:[A-Za-z0-9_-]{25,}`,
			replacement: "***",
		},

		// Bearer tokens
		{
			name:        PatternBearerToken,
			regex:       `Bearer\s+[a-zA-Z0-9\-._~+/]+=*`,
			replacement: "Bearer ***",
		},
	}

	r := &Redactor{}
	for _, p := range patterns {
		r.patterns = append(r.patterns, &redactPattern{
			name:        p.name,
			regex:       regexp.MustCompile(p.regex),
			replacement: p.replacement,
		})
	}
	return r
}

// RedactString redacts credentials from a string value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}

	redacted := value
	for _, pattern := range r.patterns {
		redacted = pattern.regex.ReplaceAllString(redacted, pattern.replacement)
	}

	return redacted
}

// RedactArgs redacts credentials from variadic log arguments.
// Args are in the form: key1, value1, key2, value2, ...
func (r *Redactor) RedactArgs(args ...any) []any {
	if len(args) == 0 {
		return args
	}

	redacted := make([]any, len(args))
	copy(redacted, args)

	for i := 1; i < len(redacted); i += 2 {
		key, ok := redacted[i-1].(string)
		if ok && isSensitiveKey(key) {
			redacted[i] = redactValue(redacted[i])
			continue
		}

		if str, ok := redacted[i].(string); ok {
			redacted[i] = r.RedactString(str)
		}
		if err, ok := redacted[i].(error); ok && err != nil {
			redacted[i] = r.RedactString(err.Error())
		}
	}

	return redacted
}

// isSensitiveKey checks if a key name indicates sensitive data.
// Values under these keys are redacted wholesale regardless of shape.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	sensitiveKeys := []string{
		"token", "secret", "credential",
		"password", "passwd", "pwd",
		"auth", "authorization",
		"api_key", "apikey",
	}

	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}

	return false
}

// redactValue redacts a sensitive value completely.
func redactValue(value any) any {
	if v, ok := value.(string); ok && v == "" {
		return ""
	}
	return "***"
}
