package connector

import (
	"encoding/json"
	"net/http"
	"strings"
)

// OKStatus is the application status the server returns for a successful
// operation.
const OKStatus = "OK"

// Envelope is the uniform value returned by the Connector before error
// mapping. It is an immutable snapshot of one exchange; nothing recomputes
// its fields after construction.
type Envelope struct {
	// HTTPStatus is the HTTP status code of the response.
	HTTPStatus int

	// Body is the decoded JSON body. Nil when the response carried no
	// decodable object or array.
	Body any

	// ApplicationStatus is the status derived from the body: the "status"
	// field of an object body, or the body itself when the server returned
	// a bare string. Empty when no status could be derived.
	ApplicationStatus string

	// RawResponse is the underlying response, for diagnostics only.
	// Business logic must branch on HTTPStatus and ApplicationStatus.
	RawResponse *http.Response
}

// NewEnvelope builds an Envelope from a raw response body, deriving the
// application status.
//
// Decode policy: the body is JSON-decoded; a body that fails to decode is
// treated as a bare application status, with the trimmed raw text becoming
// the status and the body nil. Servers return plain strings instead of
// objects on some error paths, and this keeps those reachable by the error
// mapper instead of surfacing a separate decode failure.
func NewEnvelope(httpStatus int, raw *http.Response, rawBody []byte) *Envelope {
	env := &Envelope{HTTPStatus: httpStatus, RawResponse: raw}

	trimmed := strings.TrimSpace(string(rawBody))
	if trimmed == "" {
		return env
	}

	var decoded any
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		env.ApplicationStatus = trimmed
		return env
	}

	env.Body = decoded
	env.ApplicationStatus = deriveStatus(decoded)
	if _, isString := decoded.(string); isString {
		// A bare JSON string is the status itself, not a body.
		env.Body = nil
	}
	return env
}

// NewCanned builds an Envelope with an explicit application status,
// bypassing derivation. It exists for canned responses in mock executors,
// where tests pin the status independently of the body. Production code
// always goes through NewEnvelope.
func NewCanned(httpStatus int, body any, status string, raw *http.Response) *Envelope {
	return &Envelope{
		HTTPStatus:        httpStatus,
		Body:              body,
		ApplicationStatus: status,
		RawResponse:       raw,
	}
}

// StatusOK reports whether the application status is the OK status.
func (e *Envelope) StatusOK() bool {
	return e.ApplicationStatus == OKStatus
}

// deriveStatus extracts the application status from a decoded body:
// the "status" field of an object, or the body itself for a bare string.
func deriveStatus(body any) string {
	switch b := body.(type) {
	case string:
		return b
	case map[string]any:
		if s, ok := b["status"].(string); ok {
			return s
		}
	}
	return ""
}
