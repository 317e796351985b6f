package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestChecker_CheckLiveness(t *testing.T) {
	checker := New(time.Second)

	status := checker.CheckLiveness(context.Background())
	if status.Status != "ok" {
		t.Errorf("Expected status ok, got %q", status.Status)
	}
	if status.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestChecker_CheckReadiness(t *testing.T) {
	t.Run("no checks registered", func(t *testing.T) {
		checker := New(time.Second)

		status := checker.CheckReadiness(context.Background())
		if status.Status != "ready" {
			t.Errorf("Expected status ready, got %q", status.Status)
		}
	})

	t.Run("all healthy", func(t *testing.T) {
		checker := New(time.Second)
		checker.RegisterCheck("audit_store", func(ctx context.Context) error { return nil })
		checker.RegisterCheck("upstream", func(ctx context.Context) error { return nil })

		status := checker.CheckReadiness(context.Background())
		if status.Status != "ready" {
			t.Errorf("Expected status ready, got %q", status.Status)
		}
		if len(status.Checks) != 2 {
			t.Errorf("Expected 2 check results, got %d", len(status.Checks))
		}
		if status.Checks["audit_store"].Status != "ok" {
			t.Errorf("Expected audit_store ok, got %q", status.Checks["audit_store"].Status)
		}
	})

	t.Run("one unhealthy degrades overall status", func(t *testing.T) {
		checker := New(time.Second)
		checker.RegisterCheck("audit_store", func(ctx context.Context) error {
			return errors.New("database is locked")
		})
		checker.RegisterCheck("upstream", func(ctx context.Context) error { return nil })

		status := checker.CheckReadiness(context.Background())
		if status.Status != "degraded" {
			t.Errorf("Expected status degraded, got %q", status.Status)
		}
		result := status.Checks["audit_store"]
		if result.Status != "unhealthy" {
			t.Errorf("Expected audit_store unhealthy, got %q", result.Status)
		}
		if result.Message != "database is locked" {
			t.Errorf("Expected check message preserved, got %q", result.Message)
		}
	})

	t.Run("slow check times out", func(t *testing.T) {
		checker := New(20 * time.Millisecond)
		checker.RegisterCheck("slow", func(ctx context.Context) error {
			select {
			case <-time.After(time.Second):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

		status := checker.CheckReadiness(context.Background())
		if status.Status != "degraded" {
			t.Errorf("Expected status degraded, got %q", status.Status)
		}
	})
}

func TestChecker_UnregisterCheck(t *testing.T) {
	checker := New(time.Second)
	checker.RegisterCheck("temp", func(ctx context.Context) error {
		return errors.New("always failing")
	})
	checker.UnregisterCheck("temp")

	status := checker.CheckReadiness(context.Background())
	if status.Status != "ready" {
		t.Errorf("Expected status ready after unregister, got %q", status.Status)
	}
}

func TestLivenessHandler(t *testing.T) {
	checker := New(time.Second)
	handler := checker.LivenessHandler()

	t.Run("GET returns ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var status HealthStatus
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("Response is not JSON: %v", err)
		}
		if status.Status != "ok" {
			t.Errorf("Expected status ok, got %q", status.Status)
		}
	})

	t.Run("POST is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected 405, got %d", rec.Code)
		}
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Run("ready returns 200", func(t *testing.T) {
		checker := New(time.Second)
		checker.RegisterCheck("audit_store", func(ctx context.Context) error { return nil })

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		checker.ReadinessHandler()(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("degraded returns 503", func(t *testing.T) {
		checker := New(time.Second)
		checker.RegisterCheck("audit_store", func(ctx context.Context) error {
			return errors.New("unavailable")
		})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		checker.ReadinessHandler()(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", rec.Code)
		}
	})
}
