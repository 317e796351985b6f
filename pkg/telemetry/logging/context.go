package logging

import "context"

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey contextKey = "request_id"

	// APIMethodKey is the context key for the upstream Bot API method.
	APIMethodKey contextKey = "api_method"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithAPIMethod adds the upstream Bot API method name to the context.
func WithAPIMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, APIMethodKey, method)
}

// GetAPIMethod retrieves the upstream Bot API method from the context.
func GetAPIMethod(ctx context.Context) string {
	if method, ok := ctx.Value(APIMethodKey).(string); ok {
		return method
	}
	return ""
}

// extractContextFields pulls known fields out of the context so the
// *Context logging methods include them automatically.
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if method := GetAPIMethod(ctx); method != "" {
		fields = append(fields, "api_method", method)
	}

	return fields
}
