package resource

import (
	"fmt"
	"net/http"

	"github.com/sweetpay/sweetpay-go/pkg/connector"
	sweeterr "github.com/sweetpay/sweetpay-go/pkg/errors"
)

// Check inspects an envelope and either returns its body or raises one
// typed error from the fixed taxonomy.
//
// The decision table, evaluated in order: 200 with an OK application
// status returns the body; 200 with anything else (including a status
// that could not be derived) is a FailureStatus; the specific 4xx/5xx
// codes map to their kinds; everything else is Unknown.
func Check(env *connector.Envelope) (any, error) {
	if env.HTTPStatus == http.StatusOK {
		if env.StatusOK() {
			return env.Body, nil
		}
		return nil, &sweeterr.Error{
			Kind: sweeterr.KindFailureStatus,
			Message: fmt.Sprintf(
				"the passed status=%q is not %q, meaning that the requested operation did not succeed",
				env.ApplicationStatus, connector.OKStatus),
			HTTPStatus:        env.HTTPStatus,
			ApplicationStatus: env.ApplicationStatus,
			Body:              env.Body,
			RawResponse:       env.RawResponse,
		}
	}

	switch env.HTTPStatus {
	case http.StatusBadRequest:
		return nil, newError(env, sweeterr.KindBadData,
			"the data passed to the server contained bad data, most likely a missing parameter")
	case http.StatusUnauthorized:
		return nil, newError(env, sweeterr.KindUnauthorized,
			"the passed API token was invalid")
	case http.StatusNotFound:
		return nil, newError(env, sweeterr.KindNotFound,
			"the resource you were looking for couldn't be found")
	case http.StatusMethodNotAllowed:
		return nil, newError(env, sweeterr.KindMethodNotAllowed,
			"the specified method is not allowed on this endpoint")
	case http.StatusUnprocessableEntity:
		return nil, newError(env, sweeterr.KindInvalidParameter,
			"an invalid parameter was passed or a parameter was missed")
	case http.StatusInternalServerError:
		return nil, newError(env, sweeterr.KindInternalServer,
			"an internal server error occurred")
	case http.StatusBadGateway:
		return nil, newError(env, sweeterr.KindProxy,
			"a proxy error occurred; a created resource may exist even though this error occurred")
	case http.StatusServiceUnavailable:
		return nil, newError(env, sweeterr.KindUnderMaintenance,
			"the server is currently under maintenance and can't be contacted")
	default:
		return nil, newError(env, sweeterr.KindUnknown,
			"something went wrong in the request")
	}
}

// newError builds a typed error carrying the envelope's full diagnostic
// context. When no application status was derived and the body is an
// object, an "error" field supplies the status; some error-path payloads
// use that field name instead of "status".
func newError(env *connector.Envelope, kind sweeterr.Kind, message string) *sweeterr.Error {
	status := env.ApplicationStatus
	if status == "" {
		if body, ok := env.Body.(map[string]any); ok {
			if s, ok := body["error"].(string); ok {
				status = s
			}
		}
	}

	return &sweeterr.Error{
		Kind:              kind,
		Message:           message,
		HTTPStatus:        env.HTTPStatus,
		ApplicationStatus: status,
		Body:              env.Body,
		RawResponse:       env.RawResponse,
	}
}
