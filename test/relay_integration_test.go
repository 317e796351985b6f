//go:build integration

package test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"relay-hq/courier/internal/botapitest"
	"relay-hq/courier/pkg/audit"
	"relay-hq/courier/pkg/audit/storage"
	"relay-hq/courier/pkg/config"
	"relay-hq/courier/pkg/server"
	"relay-hq/courier/pkg/telegram"
	"relay-hq/courier/pkg/telemetry/health"
	"relay-hq/courier/pkg/telemetry/logging"
	"relay-hq/courier/pkg/telemetry/metrics"
)

const integrationToken = "123456:ABC-DEF1234ghIkl"

// TestRelayIntegration exercises the end-to-end flow from inbound HTTP
// request through the relay to a scripted Bot API upstream, including
// the audit trail.
func TestRelayIntegration(t *testing.T) {
	upstream := botapitest.NewServer()
	defer upstream.Close()

	cfg := config.DefaultConfig()
	cfg.Telegram.BaseURL = upstream.URL()

	logger, err := logging.New(logging.Config{
		Level:        "error",
		Format:       "json",
		RedactTokens: true,
		Writer:       io.Discard,
	})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	store := storage.NewMemoryStorage()
	recorder := audit.NewRecorder(store, &audit.RecorderConfig{
		Enabled:      true,
		AsyncBuffer:  16,
		WriteTimeout: cfg.Audit.Recorder.WriteTimeout,
	})

	client := telegram.NewClient(telegram.Config{
		BaseURL: cfg.Telegram.BaseURL,
		Timeout: cfg.Telegram.Timeout,
	})
	defer client.Close()

	srv := server.NewServer(server.Dependencies{
		Config:  cfg,
		BotAPI:  client,
		Auditor: recorder,
		Store:   store,
		Checker: health.New(cfg.Telemetry.Health.CheckTimeout),
		Metrics: metrics.NewCollector(&cfg.Telemetry.Metrics, nil),
		Logger:  logger,
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	post := func(t *testing.T, path, body string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader([]byte(body)))
		if err != nil {
			t.Fatalf("POST %s failed: %v", path, err)
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("failed to read response body: %v", err)
		}
		return resp, string(data)
	}

	t.Run("validate relays getMe", func(t *testing.T) {
		upstream.Script("getMe", botapitest.Response{
			StatusCode: http.StatusOK,
			Body:       `{"ok":true,"result":{"id":42,"username":"courier_bot"}}`,
		})

		resp, body := post(t, "/api/telegram/validate", `{"token":"`+integrationToken+`"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", resp.StatusCode, body)
		}
		if strings.TrimSpace(body) != `{"ok":true,"result":{"id":42,"username":"courier_bot"}}` {
			t.Errorf("upstream body was rewritten: %s", body)
		}

		reqs := upstream.Requests()
		last := reqs[len(reqs)-1]
		if last.Method != "getMe" {
			t.Errorf("expected upstream method getMe, got %q", last.Method)
		}
		if last.Token != integrationToken {
			t.Errorf("token not relayed to upstream")
		}
		if len(last.Params) != 0 {
			t.Errorf("expected empty params, got %v", last.Params)
		}
	})

	t.Run("send forwards optional fields only when present", func(t *testing.T) {
		resp, _ := post(t, "/api/telegram/send",
			`{"token":"`+integrationToken+`","chat_id":"99","text":"hi","parse_mode":"HTML"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		reqs := upstream.Requests()
		last := reqs[len(reqs)-1]
		if last.Method != "sendMessage" {
			t.Fatalf("expected upstream method sendMessage, got %q", last.Method)
		}
		if _, ok := last.Params["parse_mode"]; !ok {
			t.Error("parse_mode should be forwarded")
		}
		if _, ok := last.Params["disable_notification"]; ok {
			t.Error("disable_notification should be omitted when absent")
		}
	})

	t.Run("rejected call answers 400 with upstream body", func(t *testing.T) {
		upstream.Script("getMyCommands", botapitest.Response{
			StatusCode: http.StatusOK,
			Body:       `{"ok":false,"error_code":401,"description":"Unauthorized"}`,
		})

		resp, body := post(t, "/api/telegram/commands", `{"token":"bad"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.StatusCode)
		}
		if strings.TrimSpace(body) != `{"ok":false,"error_code":401,"description":"Unauthorized"}` {
			t.Errorf("rejection body was rewritten: %s", body)
		}
	})

	t.Run("upstream status propagates verbatim", func(t *testing.T) {
		upstream.Script("deleteWebhook", botapitest.Response{
			StatusCode: http.StatusNotFound,
			Body:       `{"ok":false,"error_code":404,"description":"Not Found"}`,
		})

		resp, body := post(t, "/api/telegram/call",
			`{"token":"`+integrationToken+`","method":"deleteWebhook"}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.StatusCode)
		}
		if !strings.Contains(body, `"error_code":404`) {
			t.Errorf("upstream error body not propagated: %s", body)
		}
	})

	t.Run("validation failure skips upstream", func(t *testing.T) {
		before := upstream.RequestCount()

		resp, _ := post(t, "/api/telegram/validate", `{}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.StatusCode)
		}
		if upstream.RequestCount() != before {
			t.Error("no upstream call should be made on validation failure")
		}
	})

	// Drain the recorder, then inspect the audit trail.
	if err := recorder.Close(); err != nil {
		t.Fatalf("recorder close failed: %v", err)
	}

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 audit records, got %d", count)
	}
}
