package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"relay-hq/courier/pkg/proxy/types"
)

// MaxRequestBodySize is the maximum allowed request body size (1MB).
const MaxRequestBodySize = 1 * 1024 * 1024

// validatable is implemented by all request body types.
type validatable interface {
	Validate() error
}

// decodeBody reads and decodes an HTTP request body into dst, enforcing
// the size limit, then runs the body's own validation. All failures are
// returned as *RequestError so callers answer 400 before any upstream
// call happens.
func decodeBody(r *http.Request, dst validatable) error {
	limitedReader := io.LimitReader(r.Body, MaxRequestBodySize)

	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if len(body) >= MaxRequestBodySize {
		return &RequestError{
			Message: fmt.Sprintf("request body exceeds maximum size of %d bytes", MaxRequestBodySize),
			Param:   "body",
		}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &RequestError{
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Param:   "body",
		}
	}

	if err := dst.Validate(); err != nil {
		if valErr, ok := err.(*types.ValidationError); ok {
			return &RequestError{
				Message: valErr.Message,
				Param:   valErr.Field,
			}
		}
		return err
	}

	return nil
}

// ParseTokenRequest parses and validates a validate/commands body.
func ParseTokenRequest(r *http.Request) (*types.TokenRequest, error) {
	var req types.TokenRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ParseSendMessageRequest parses and validates a send body.
func ParseSendMessageRequest(r *http.Request) (*types.SendMessageRequest, error) {
	var req types.SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ParseCallRequest parses and validates a generic call body.
func ParseCallRequest(r *http.Request) (*types.CallRequest, error) {
	var req types.CallRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// RequestError represents a request parsing or validation error.
type RequestError struct {
	Message string
	Param   string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// ToDescriptor converts the error to the descriptor wire shape.
func (e *RequestError) ToDescriptor() *types.Descriptor {
	if e.Param != "" {
		return types.NewDescriptor(fmt.Sprintf("%s: %s", e.Param, e.Message))
	}
	return types.NewDescriptor(e.Message)
}
