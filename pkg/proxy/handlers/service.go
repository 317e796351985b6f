package handlers

import (
	"net/http"

	"relay-hq/courier/pkg/proxy"
	"relay-hq/courier/pkg/proxy/types"
)

// RootHandler serves the service banner at GET /.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		_ = proxy.WriteJSONResponse(w, http.StatusOK, types.MessageResponse{
			Message: "Telegram Bot → App backend is running",
		})
	}
}

// HelloHandler serves the API liveness greeting at GET /api/hello.
func HelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		_ = proxy.WriteJSONResponse(w, http.StatusOK, types.MessageResponse{
			Message: "Hello from the backend API!",
		})
	}
}

// requireGet rejects everything but GET and HEAD with 405.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		_ = proxy.WriteJSONResponse(w, http.StatusMethodNotAllowed,
			types.NewDescriptor("method not allowed, use GET"))
		return false
	}
	return true
}

// requirePost rejects everything but POST with 405.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		_ = proxy.WriteJSONResponse(w, http.StatusMethodNotAllowed,
			types.NewDescriptor("method not allowed, use POST"))
		return false
	}
	return true
}
