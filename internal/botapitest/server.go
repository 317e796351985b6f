// Package botapitest provides a scripted Bot API upstream for
// integration tests.
package botapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// Response defines a scripted upstream response for one API method.
type Response struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// Request is one call the upstream received.
type Request struct {
	Token  string
	Method string
	Params map[string]json.RawMessage
}

// Server simulates the Bot API over httptest. Methods without a
// scripted response answer 200 {"ok":true,"result":{}}.
type Server struct {
	server    *httptest.Server
	mu        sync.Mutex
	responses map[string]Response
	requests  []Request
}

// NewServer creates a started mock Bot API server.
func NewServer() *Server {
	s := &Server{
		responses: make(map[string]Response),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handler))
	return s
}

// URL returns the mock server's base URL.
func (s *Server) URL() string {
	return s.server.URL
}

// Close shuts the mock server down.
func (s *Server) Close() {
	s.server.Close()
}

// Script sets the response returned for an API method.
func (s *Server) Script(method string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method] = resp
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns the number of requests received.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) handler(w http.ResponseWriter, r *http.Request) {
	req := Request{}

	// Path shape: /bot{token}/{method}
	path := strings.TrimPrefix(r.URL.Path, "/bot")
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		req.Token = path[:idx]
		req.Method = path[idx+1:]
	}

	_ = json.NewDecoder(r.Body).Decode(&req.Params)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	resp, scripted := s.responses[req.Method]
	s.mu.Unlock()

	if !scripted {
		resp = Response{StatusCode: http.StatusOK, Body: `{"ok":true,"result":{}}`}
	}

	if resp.Delay > 0 {
		time.Sleep(resp.Delay)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}
