package proxy

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseTokenRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/telegram/validate", strings.NewReader(`{"token":"123:abc"}`))
		req, err := ParseTokenRequest(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Token != "123:abc" {
			t.Errorf("expected token to round-trip, got %q", req.Token)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/telegram/validate", strings.NewReader(`{}`))
		_, err := ParseTokenRequest(r)
		reqErr, ok := err.(*RequestError)
		if !ok {
			t.Fatalf("expected RequestError, got %T: %v", err, err)
		}
		if reqErr.Param != "token" {
			t.Errorf("expected param token, got %q", reqErr.Param)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/telegram/validate", strings.NewReader(`{not json`))
		_, err := ParseTokenRequest(r)
		if _, ok := err.(*RequestError); !ok {
			t.Fatalf("expected RequestError, got %T: %v", err, err)
		}
	})
}

func TestParseSendMessageRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantParam string
	}{
		{
			name: "required only",
			body: `{"token":"123:abc","chat_id":"42","text":"hi"}`,
		},
		{
			name: "with optionals",
			body: `{"token":"123:abc","chat_id":"42","text":"hi","parse_mode":"Markdown","disable_notification":true}`,
		},
		{
			name:      "missing chat_id",
			body:      `{"token":"123:abc","text":"hi"}`,
			wantErr:   true,
			wantParam: "chat_id",
		},
		{
			name:      "missing text",
			body:      `{"token":"123:abc","chat_id":"42"}`,
			wantErr:   true,
			wantParam: "text",
		},
		{
			name:      "missing token",
			body:      `{"chat_id":"42","text":"hi"}`,
			wantErr:   true,
			wantParam: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/telegram/send", strings.NewReader(tt.body))
			req, err := ParseSendMessageRequest(r)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			reqErr, ok := err.(*RequestError)
			if !ok {
				t.Fatalf("expected RequestError, got %T: %v", err, err)
			}
			if reqErr.Param != tt.wantParam {
				t.Errorf("expected param %q, got %q", tt.wantParam, reqErr.Param)
			}
			if req != nil {
				t.Error("expected nil request on validation failure")
			}
		})
	}
}

func TestParseSendMessageRequest_OptionalAbsence(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/telegram/send", strings.NewReader(`{"token":"123:abc","chat_id":"42","text":"hi"}`))
	req, err := ParseSendMessageRequest(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ParseMode != nil || req.DisableWebPagePreview != nil || req.DisableNotification != nil {
		t.Error("absent optional fields must decode to nil pointers")
	}
}

func TestParseCallRequest(t *testing.T) {
	t.Run("params preserved raw", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/telegram/call", strings.NewReader(`{"token":"123:abc","method":"sendPhoto","params":{"photo":{"file_id":"xyz"},"n":1.50}}`))
		req, err := ParseCallRequest(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(req.Params["photo"]) != `{"file_id":"xyz"}` {
			t.Errorf("photo param altered: %s", req.Params["photo"])
		}
		if string(req.Params["n"]) != `1.50` {
			t.Errorf("numeric param altered: %s", req.Params["n"])
		}
	})

	t.Run("params absent", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/telegram/call", strings.NewReader(`{"token":"123:abc","method":"getMe"}`))
		req, err := ParseCallRequest(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Params != nil {
			t.Errorf("expected nil params, got %v", req.Params)
		}
	})

	t.Run("missing method", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/telegram/call", strings.NewReader(`{"token":"123:abc"}`))
		_, err := ParseCallRequest(r)
		reqErr, ok := err.(*RequestError)
		if !ok {
			t.Fatalf("expected RequestError, got %T: %v", err, err)
		}
		if reqErr.Param != "method" {
			t.Errorf("expected param method, got %q", reqErr.Param)
		}
	})
}

func TestRequestError_ToDescriptor(t *testing.T) {
	e := &RequestError{Message: "token is required", Param: "token"}
	d := e.ToDescriptor()
	if d.Description != "token: token is required" {
		t.Errorf("unexpected descriptor: %q", d.Description)
	}

	e = &RequestError{Message: "invalid JSON"}
	if d := e.ToDescriptor(); d.Description != "invalid JSON" {
		t.Errorf("unexpected descriptor: %q", d.Description)
	}
}
