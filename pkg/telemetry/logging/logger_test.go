package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func newBufferedLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg.Writer = &buf
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, &buf
}

func TestLogger_JSONOutput(t *testing.T) {
	logger, buf := newBufferedLogger(t, Config{Level: "info", Format: "json"})

	logger.Info("relay call completed", "api_method", "getMe", "status", 200)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "relay call completed" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["api_method"] != "getMe" {
		t.Errorf("unexpected api_method: %v", entry["api_method"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(t, Config{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry emitted at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn entry missing")
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger, buf := newBufferedLogger(t, Config{Level: "info", Format: "json"})

	logger.Debug("before")
	if err := logger.SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("debug entry emitted before level change")
	}
	if !strings.Contains(out, "after") {
		t.Error("debug entry missing after level change")
	}
	if logger.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", logger.Level())
	}

	if err := logger.SetLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLogger_Redaction(t *testing.T) {
	logger, buf := newBufferedLogger(t, Config{Level: "info", Format: "json", RedactTokens: true})

	logger.Info("upstream failed", "token", sampleToken, "detail", "url /bot"+sampleToken+"/getMe")

	if strings.Contains(buf.String(), sampleToken) {
		t.Errorf("token leaked into log output: %s", buf.String())
	}
}

func TestLogger_ContextFields(t *testing.T) {
	logger, buf := newBufferedLogger(t, Config{Level: "info", Format: "json"})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithAPIMethod(ctx, "sendMessage")
	logger.InfoContext(ctx, "relay call completed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id missing: %v", entry)
	}
	if entry["api_method"] != "sendMessage" {
		t.Errorf("api_method missing: %v", entry)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
