// Package errors defines the typed failure taxonomy surfaced by the SDK.
//
// Every failure a caller can observe is an *Error carrying one Kind from a
// fixed set. The set, and the fields on Error, are a binding contract:
// callers branch on Kind, HTTPStatus, and ApplicationStatus programmatically,
// so renaming a kind is a breaking change.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an SDK error.
type Kind string

const (
	// KindBadData indicates the server rejected the request payload (HTTP 400).
	KindBadData Kind = "bad_data"

	// KindInvalidParameter indicates an invalid or missing parameter (HTTP 422).
	KindInvalidParameter Kind = "invalid_parameter"

	// KindUnauthorized indicates an invalid API token (HTTP 401).
	KindUnauthorized Kind = "unauthorized"

	// KindNotFound indicates the resource does not exist (HTTP 404).
	KindNotFound Kind = "not_found"

	// KindMethodNotAllowed indicates the endpoint rejected the HTTP method
	// (HTTP 405). Usually a sign of an SDK/server version mismatch.
	KindMethodNotAllowed Kind = "method_not_allowed"

	// KindInternalServer indicates a server-side failure (HTTP 500).
	KindInternalServer Kind = "internal_server"

	// KindUnderMaintenance indicates the server is unavailable for
	// maintenance (HTTP 503).
	KindUnderMaintenance Kind = "under_maintenance"

	// KindProxy indicates an intermediary failure (HTTP 502). The requested
	// operation may still have been performed.
	KindProxy Kind = "proxy_error"

	// KindFailureStatus indicates a 200 response whose application status
	// was not OK.
	KindFailureStatus Kind = "failure_status"

	// KindTimeout indicates the transport timed out before a response arrived.
	KindTimeout Kind = "timeout"

	// KindRequestFailed indicates a transport-level failure other than a
	// timeout (DNS, connection, protocol).
	KindRequestFailed Kind = "request_failed"

	// KindUnknown indicates a response the SDK has no specific mapping for.
	KindUnknown Kind = "unknown"
)

// Error is the single error type raised by the SDK.
//
// HTTPStatus is 0 and ApplicationStatus is "" when the failure happened
// before a response was received. RawResponse is a diagnostics-only handle;
// business logic must branch on Kind, HTTPStatus, and ApplicationStatus.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Message is the human-readable error description.
	Message string

	// HTTPStatus is the HTTP status code, 0 if no response was received.
	HTTPStatus int

	// ApplicationStatus is the status extracted from the response payload,
	// empty if none could be derived.
	ApplicationStatus string

	// Body is the decoded response body, nil if absent or undecodable.
	Body any

	// RawResponse is the underlying response, nil if the request failed.
	RawResponse *http.Response

	// Cause is the underlying transport error. Set only for KindTimeout
	// and KindRequestFailed.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("sweetpay: %s", e.Message)

	if e.Kind != "" {
		msg = fmt.Sprintf("%s (kind: %s)", msg, e.Kind)
	}

	if e.HTTPStatus > 0 {
		msg = fmt.Sprintf("%s [HTTP %d]", msg, e.HTTPStatus)
	}

	if e.ApplicationStatus != "" {
		msg = fmt.Sprintf("%s (status: %s)", msg, e.ApplicationStatus)
	}

	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}

	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable reports whether the failure may succeed on a retry.
func (e *Error) IsRetryable() bool {
	switch e.Kind {
	case KindTimeout, KindRequestFailed, KindInternalServer, KindProxy, KindUnderMaintenance:
		return true
	default:
		return false
	}
}

// NewTimeout returns a KindTimeout error wrapping the transport cause.
func NewTimeout(cause error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "the request timed out",
		Cause:   cause,
	}
}

// NewRequestFailed returns a KindRequestFailed error wrapping the transport
// cause. Inspect Cause to see the underlying net/http failure.
func NewRequestFailed(cause error) *Error {
	return &Error{
		Kind:    KindRequestFailed,
		Message: "could not send a request to the server",
		Cause:   cause,
	}
}

// As extracts an *Error from err's chain. The second return is false when
// err is not an SDK error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is an SDK error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
