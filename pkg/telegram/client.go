package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// MaxResponseBodySize is the maximum upstream response size read (10MB).
const MaxResponseBodySize = 10 * 1024 * 1024

// Client performs Bot API calls over a pooled HTTP client.
// Every call is a single POST with a JSON body; there are no retries
// and no queuing. The per-call timeout comes from Config.Timeout.
type Client struct {
	// baseURL is the Bot API base URL without a trailing slash
	baseURL string

	// client is the HTTP client with connection pooling
	client *http.Client
}

// NewClient creates a Bot API client with connection pooling.
func NewClient(config Config) *Client {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
	}
}

// Invoke performs exactly one POST {base}/bot{token}/{method} with the
// params object as the JSON body. Nil params are sent as {}.
//
// On success the full decoded response body is returned verbatim.
// Failures are classified in priority order:
//
//  1. A 2xx response whose envelope has "ok" false or absent
//     returns *RejectedError carrying the full body.
//  2. A non-2xx status returns *StatusError carrying the status and,
//     when the upstream body is valid JSON, the body verbatim.
//  3. Anything else (timeout, DNS failure, connection refused,
//     malformed 2xx body) returns *UnreachableError.
//
// The token never appears in logs or in returned error strings.
func (c *Client) Invoke(ctx context.Context, token, method string, params Params) (json.RawMessage, error) {
	if params == nil {
		params = Params{}
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, &UnreachableError{Cause: fmt.Errorf("failed to encode params: %w", err)}
	}

	endpoint := c.baseURL + "/bot" + token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &UnreachableError{Cause: sanitizeError(err, token)}
	}
	req.Header.Set("Content-Type", "application/json")

	slog.DebugContext(ctx, "calling bot api", "api_method", method)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UnreachableError{Cause: sanitizeError(err, token)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBodySize))
	if err != nil {
		return nil, &UnreachableError{Cause: sanitizeError(fmt.Errorf("failed to read response: %w", err), token)}
	}

	// Status and body are captured here, at the point of failure.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if json.Valid(respBody) {
			return nil, &StatusError{
				StatusCode: resp.StatusCode,
				Body:       json.RawMessage(respBody),
			}
		}
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("bot api returned status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, &UnreachableError{Cause: fmt.Errorf("malformed bot api response: %w", err)}
	}

	if env.OK == nil || !*env.OK {
		return nil, &RejectedError{Body: json.RawMessage(respBody)}
	}

	return json.RawMessage(respBody), nil
}

// Validate checks a token by calling getMe with an empty params object.
func (c *Client) Validate(ctx context.Context, token string) (json.RawMessage, error) {
	return c.Invoke(ctx, token, "getMe", nil)
}

// FetchCommands retrieves the bot's registered commands via
// getMyCommands with an empty params object.
func (c *Client) FetchCommands(ctx context.Context, token string) (json.RawMessage, error) {
	return c.Invoke(ctx, token, "getMyCommands", nil)
}

// SendMessage delivers a message via sendMessage. Optional message
// fields are included in the upstream params only when set.
func (c *Client) SendMessage(ctx context.Context, token string, msg Message) (json.RawMessage, error) {
	return c.Invoke(ctx, token, "sendMessage", msg.params())
}

// Close releases idle pooled connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// sanitizeError strips the bot token from a transport error. The
// net/http client embeds the full request URL, token included, in
// *url.Error, so the raw error must never be logged or returned.
func sanitizeError(err error, token string) error {
	if err == nil {
		return nil
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		msg := fmt.Sprintf("%s %s: %v", uerr.Op, uerr.URL, uerr.Err)
		return errors.New(redactToken(msg, token))
	}

	msg := err.Error()
	if token != "" && strings.Contains(msg, token) {
		return errors.New(redactToken(msg, token))
	}
	return err
}

// redactToken replaces every occurrence of the token with a placeholder.
func redactToken(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "***")
}
