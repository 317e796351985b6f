package proxy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"relay-hq/courier/pkg/proxy/types"
	"relay-hq/courier/pkg/telegram"
)

func TestHandleError(t *testing.T) {
	rejectedBody := json.RawMessage(`{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	upstreamBody := json.RawMessage(`{"ok":false,"error_code":404,"description":"Not Found"}`)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantRaw    string
		wantDesc   bool
	}{
		{
			name:       "validation error",
			err:        &RequestError{Message: "token is required", Param: "token"},
			wantStatus: http.StatusBadRequest,
			wantDesc:   true,
		},
		{
			name:       "rejected call relays body",
			err:        &telegram.RejectedError{Body: rejectedBody},
			wantStatus: http.StatusBadRequest,
			wantRaw:    string(rejectedBody),
		},
		{
			name:       "upstream status with json body",
			err:        &telegram.StatusError{StatusCode: 404, Body: upstreamBody},
			wantStatus: http.StatusNotFound,
			wantRaw:    string(upstreamBody),
		},
		{
			name:       "upstream status without body",
			err:        &telegram.StatusError{StatusCode: 503, Message: "bot api returned status 503 Service Unavailable"},
			wantStatus: http.StatusServiceUnavailable,
			wantDesc:   true,
		},
		{
			name:       "transport failure",
			err:        &telegram.UnreachableError{Cause: errors.New("dial tcp: connection refused")},
			wantStatus: http.StatusBadGateway,
			wantDesc:   true,
		},
		{
			name:       "wrapped transport failure",
			err:        fmt.Errorf("relay: %w", &telegram.UnreachableError{Cause: errors.New("timeout")}),
			wantStatus: http.StatusBadGateway,
			wantDesc:   true,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDesc:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := HandleError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}

			if tt.wantRaw != "" {
				raw, ok := body.(json.RawMessage)
				if !ok {
					t.Fatalf("expected raw body, got %T", body)
				}
				if string(raw) != tt.wantRaw {
					t.Errorf("body not relayed verbatim: %s", raw)
				}
			}

			if tt.wantDesc {
				desc, ok := body.(*types.Descriptor)
				if !ok {
					t.Fatalf("expected descriptor body, got %T", body)
				}
				if desc.Description == "" {
					t.Error("expected non-empty description")
				}
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, "success"},
		{"validation", &RequestError{Message: "x"}, "invalid_request"},
		{"rejected", &telegram.RejectedError{}, "rejected"},
		{"upstream", &telegram.StatusError{StatusCode: 500}, "upstream_error"},
		{"unreachable", &telegram.UnreachableError{Cause: errors.New("x")}, "unreachable"},
		{"unknown", errors.New("x"), "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
