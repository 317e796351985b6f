package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"relay-hq/courier/pkg/audit"
	"relay-hq/courier/pkg/proxy"
	"relay-hq/courier/pkg/telegram"
	"relay-hq/courier/pkg/telemetry/logging"
)

// TelegramHandler relays REST calls to the Bot API. Each endpoint
// parses and validates its body, makes exactly one upstream call, and
// answers with the Bot API body verbatim on success or a classified
// error on failure.
type TelegramHandler struct {
	api      BotAPI
	auditor  Auditor
	upstream UpstreamRecorder
	logger   *logging.Logger
}

// NewTelegramHandler creates the relay handler set. The auditor and
// upstream recorder may be nil; recording is skipped.
func NewTelegramHandler(api BotAPI, auditor Auditor, upstream UpstreamRecorder, logger *logging.Logger) *TelegramHandler {
	return &TelegramHandler{
		api:      api,
		auditor:  auditor,
		upstream: upstream,
		logger:   logger,
	}
}

// relayResult carries everything finish needs to answer the client and
// record the call.
type relayResult struct {
	apiMethod       string
	token           string
	body            json.RawMessage
	err             error
	start           time.Time
	upstreamLatency time.Duration
	upstreamCalled  bool
}

// Validate serves POST /api/telegram/validate by calling getMe.
func (h *TelegramHandler) Validate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if !requirePost(w, r) {
			return
		}

		req, err := proxy.ParseTokenRequest(r)
		if err != nil {
			h.finish(w, r, relayResult{apiMethod: "getMe", err: err, start: start})
			return
		}

		ctx := logging.WithAPIMethod(r.Context(), "getMe")
		upstreamStart := time.Now()
		body, err := h.api.Validate(ctx, req.Token)

		h.finish(w, r.WithContext(ctx), relayResult{
			apiMethod:       "getMe",
			token:           req.Token,
			body:            body,
			err:             err,
			start:           start,
			upstreamLatency: time.Since(upstreamStart),
			upstreamCalled:  true,
		})
	}
}

// Commands serves POST /api/telegram/commands by calling getMyCommands.
func (h *TelegramHandler) Commands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if !requirePost(w, r) {
			return
		}

		req, err := proxy.ParseTokenRequest(r)
		if err != nil {
			h.finish(w, r, relayResult{apiMethod: "getMyCommands", err: err, start: start})
			return
		}

		ctx := logging.WithAPIMethod(r.Context(), "getMyCommands")
		upstreamStart := time.Now()
		body, err := h.api.FetchCommands(ctx, req.Token)

		h.finish(w, r.WithContext(ctx), relayResult{
			apiMethod:       "getMyCommands",
			token:           req.Token,
			body:            body,
			err:             err,
			start:           start,
			upstreamLatency: time.Since(upstreamStart),
			upstreamCalled:  true,
		})
	}
}

// Send serves POST /api/telegram/send by calling sendMessage.
// Optional fields are forwarded only when the client supplied them.
func (h *TelegramHandler) Send() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if !requirePost(w, r) {
			return
		}

		req, err := proxy.ParseSendMessageRequest(r)
		if err != nil {
			h.finish(w, r, relayResult{apiMethod: "sendMessage", err: err, start: start})
			return
		}

		msg := telegram.Message{
			ChatID:                req.ChatID,
			Text:                  req.Text,
			ParseMode:             req.ParseMode,
			DisableWebPagePreview: req.DisableWebPagePreview,
			DisableNotification:   req.DisableNotification,
		}

		ctx := logging.WithAPIMethod(r.Context(), "sendMessage")
		upstreamStart := time.Now()
		body, err := h.api.SendMessage(ctx, req.Token, msg)

		h.finish(w, r.WithContext(ctx), relayResult{
			apiMethod:       "sendMessage",
			token:           req.Token,
			body:            body,
			err:             err,
			start:           start,
			upstreamLatency: time.Since(upstreamStart),
			upstreamCalled:  true,
		})
	}
}

// Call serves POST /api/telegram/call, the generic passthrough for any
// Bot API method. Params reach the upstream byte-for-byte.
func (h *TelegramHandler) Call() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if !requirePost(w, r) {
			return
		}

		req, err := proxy.ParseCallRequest(r)
		if err != nil {
			h.finish(w, r, relayResult{err: err, start: start})
			return
		}

		var params telegram.Params
		if req.Params != nil {
			params = make(telegram.Params, len(req.Params))
			for k, v := range req.Params {
				params[k] = v
			}
		}

		ctx := logging.WithAPIMethod(r.Context(), req.Method)
		upstreamStart := time.Now()
		body, err := h.api.Invoke(ctx, req.Token, req.Method, params)

		h.finish(w, r.WithContext(ctx), relayResult{
			apiMethod:       req.Method,
			token:           req.Token,
			body:            body,
			err:             err,
			start:           start,
			upstreamLatency: time.Since(upstreamStart),
			upstreamCalled:  true,
		})
	}
}

// finish classifies the result, answers the client, and records the
// call in metrics, the audit trail, and the log. The token itself never
// reaches any of the three.
func (h *TelegramHandler) finish(w http.ResponseWriter, r *http.Request, res relayResult) {
	ctx := r.Context()
	outcome := proxy.Outcome(res.err)

	status := http.StatusOK
	if res.err != nil {
		var payload interface{}
		status, payload = proxy.HandleError(res.err)
		_ = proxy.WriteJSONResponse(w, status, payload)
	} else {
		_ = proxy.WriteJSONResponse(w, http.StatusOK, res.body)
	}

	var statusErr *telegram.StatusError
	upstreamStatus := 0
	if errors.As(res.err, &statusErr) {
		upstreamStatus = statusErr.StatusCode
	}

	if res.upstreamCalled && h.upstream != nil {
		h.upstream.RecordUpstream(res.apiMethod, outcome, res.upstreamLatency)
	}

	latency := time.Since(res.start)

	if h.auditor != nil {
		_ = h.auditor.Record(&audit.Record{
			RequestID:      logging.GetRequestID(ctx),
			Time:           res.start,
			Endpoint:       r.URL.Path,
			APIMethod:      res.apiMethod,
			Outcome:        outcome,
			StatusCode:     status,
			UpstreamStatus: upstreamStatus,
			LatencyMS:      latency.Milliseconds(),
			TokenDigest:    audit.TokenDigest(res.token),
			Error:          errorText(res.err),
		})
	}

	args := []any{
		"endpoint", r.URL.Path,
		"outcome", outcome,
		"status", status,
		"latency_ms", latency.Milliseconds(),
	}
	if res.upstreamCalled {
		args = append(args, "upstream_latency_ms", res.upstreamLatency.Milliseconds())
	}

	switch {
	case res.err == nil:
		h.logger.InfoContext(ctx, "relay call completed", args...)
	case outcome == "invalid_request" || outcome == "rejected" || outcome == "upstream_error":
		h.logger.WarnContext(ctx, "relay call failed", append(args, "error", errorText(res.err))...)
	default:
		h.logger.ErrorContext(ctx, "relay call failed", append(args, "error", errorText(res.err))...)
	}
}

// errorText renders an error for audit records and logs.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
