package proxy

import (
	"errors"
	"net/http"

	"relay-hq/courier/pkg/proxy/types"
	"relay-hq/courier/pkg/telegram"
)

// HandleError maps an error to an HTTP status code and response body,
// in priority order:
//
//  1. Request validation errors answer 400 with a descriptor; no
//     upstream call was made.
//  2. A call the Bot API marked as failed ("ok" false or absent)
//     answers 400 with the upstream body verbatim.
//  3. A non-2xx upstream status is propagated as-is: the upstream body
//     verbatim when it decoded as JSON, a descriptor otherwise.
//  4. Transport failures answer 502 with a descriptor.
//
// Anything else answers 500 with a generic descriptor.
func HandleError(err error) (int, interface{}) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, reqErr.ToDescriptor()
	}

	var rejected *telegram.RejectedError
	if errors.As(err, &rejected) {
		return http.StatusBadRequest, rejected.Body
	}

	var statusErr *telegram.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Body != nil {
			return statusErr.StatusCode, statusErr.Body
		}
		return statusErr.StatusCode, types.NewDescriptor(statusErr.Error())
	}

	var unreachable *telegram.UnreachableError
	if errors.As(err, &unreachable) {
		return http.StatusBadGateway, types.NewDescriptor(unreachable.Error())
	}

	return http.StatusInternalServerError, types.NewDescriptor("an internal error occurred")
}

// Outcome classifies an error for audit records and metrics.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return "invalid_request"
	}

	var rejected *telegram.RejectedError
	if errors.As(err, &rejected) {
		return "rejected"
	}

	var statusErr *telegram.StatusError
	if errors.As(err, &statusErr) {
		return "upstream_error"
	}

	var unreachable *telegram.UnreachableError
	if errors.As(err, &unreachable) {
		return "unreachable"
	}

	return "internal_error"
}
