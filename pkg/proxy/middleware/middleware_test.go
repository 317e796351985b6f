package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"relay-hq/courier/pkg/config"
	"relay-hq/courier/pkg/telemetry/logging"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.New(logging.Config{Level: "debug", Format: "json", Writer: io.Discard})
	if err != nil {
		t.Fatalf("logging.New returned error: %v", err)
	}
	return logger
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an ID when none is provided", func(t *testing.T) {
		var seen string
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen == "" {
			t.Fatal("expected request ID in context")
		}
		if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(seen) {
			t.Errorf("unexpected request ID format: %q", seen)
		}
		if rec.Header().Get(RequestIDHeader) != seen {
			t.Errorf("response header %q does not match context ID %q", rec.Header().Get(RequestIDHeader), seen)
		}
	})

	t.Run("honors client-provided ID", func(t *testing.T) {
		var seen string
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-id-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "client-id-1" {
			t.Errorf("expected client-id-1, got %q", seen)
		}
	})

	t.Run("IDs are unique across requests", func(t *testing.T) {
		handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		ids := make(map[string]bool)
		for i := 0; i < 10; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			ids[rec.Header().Get(RequestIDHeader)] = true
		}
		if len(ids) != 10 {
			t.Errorf("expected 10 unique IDs, got %d", len(ids))
		}
	})
}

func TestCORSMiddleware(t *testing.T) {
	allowAll := &config.CORSConfig{
		Enabled:          true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           3600,
		AllowCredentials: true,
	}

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("echoes origin with credentials under wildcard", func(t *testing.T) {
		handler := CORSMiddleware(allowAll)(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("expected echoed origin, got %q", got)
		}
		if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("expected credentials header")
		}
	})

	t.Run("preflight returns 204 with method and header grants", func(t *testing.T) {
		handler := CORSMiddleware(allowAll)(okHandler)

		req := httptest.NewRequest(http.MethodOptions, "/api/telegram/send", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected allowed methods header")
		}
		if rec.Header().Get("Access-Control-Max-Age") != "3600" {
			t.Errorf("expected max age 3600, got %q", rec.Header().Get("Access-Control-Max-Age"))
		}
	})

	t.Run("disallowed origin gets no grant", func(t *testing.T) {
		restricted := &config.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"https://allowed.example.com"},
		}
		handler := CORSMiddleware(restricted)(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no origin grant, got %q", got)
		}
	})

	t.Run("disabled passes through untouched", func(t *testing.T) {
		disabled := &config.CORSConfig{Enabled: false, AllowedOrigins: []string{"*"}}
		handler := CORSMiddleware(disabled)(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("expected no CORS headers when disabled")
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(testLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["description"] != "an internal error occurred" {
		t.Errorf("unexpected description: %q", body["description"])
	}
	if strings.Contains(rec.Body.String(), "handler exploded") {
		t.Error("panic detail leaked to client")
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	t.Run("fast handler completes", func(t *testing.T) {
		handler := TimeoutMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("slow handler gets 504", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		handler := TimeoutMiddleware(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusGatewayTimeout {
			t.Errorf("expected 504, got %d", rec.Code)
		}
	})
}

func TestLoggingMiddleware_StatusCapture(t *testing.T) {
	handler := LoggingMiddleware(testLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetStartTime(r.Context()).IsZero() {
			t.Error("expected start time in context")
		}
		w.WriteHeader(http.StatusBadGateway)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/telegram/call", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502 to pass through, got %d", rec.Code)
	}
}
