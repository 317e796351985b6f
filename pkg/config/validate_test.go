package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return DefaultConfig()
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		if err := Validate(validConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty listen address",
			mutate:    func(c *Config) { c.Server.ListenAddress = "" },
			wantField: "server.listen_address",
		},
		{
			name:      "listen address without port",
			mutate:    func(c *Config) { c.Server.ListenAddress = "localhost" },
			wantField: "server.listen_address",
		},
		{
			name:      "zero shutdown timeout",
			mutate:    func(c *Config) { c.Server.ShutdownTimeout = 0 },
			wantField: "server.shutdown_timeout",
		},
		{
			name:      "bad base url scheme",
			mutate:    func(c *Config) { c.Telegram.BaseURL = "api.telegram.org" },
			wantField: "telegram.base_url",
		},
		{
			name:      "zero upstream timeout",
			mutate:    func(c *Config) { c.Telegram.Timeout = 0 },
			wantField: "telegram.timeout",
		},
		{
			name:      "unknown audit backend",
			mutate:    func(c *Config) { c.Audit.Backend = "redis" },
			wantField: "audit.backend",
		},
		{
			name:      "unknown sqlite driver",
			mutate:    func(c *Config) { c.Audit.SQLite.Driver = "odbc" },
			wantField: "audit.sqlite.driver",
		},
		{
			name:      "negative retention days",
			mutate:    func(c *Config) { c.Audit.Retention.Days = -1 },
			wantField: "audit.retention.days",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "loud" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			wantField: "telemetry.logging.format",
		},
		{
			name:      "metrics path without slash",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error mentioning %q, got: %v", tt.wantField, err)
			}
		})
	}

	t.Run("disabled audit skips backend checks", func(t *testing.T) {
		cfg := validConfig()
		cfg.Audit.Enabled = false
		cfg.Audit.Backend = "redis"

		if err := Validate(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("errors are collected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ListenAddress = ""
		cfg.Telegram.Timeout = 0

		err := Validate(cfg)
		valErr, ok := err.(ValidationError)
		if !ok {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if len(valErr.Errors) != 2 {
			t.Errorf("expected 2 errors, got %d: %v", len(valErr.Errors), valErr)
		}
	})
}
