package client

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway error. The taxonomy is flat: every failure the
// client surfaces is an *Error carrying exactly one Kind.
type Kind string

const (
	// KindNetwork covers transport failures (connection refused, DNS, TLS)
	// and timeouts.
	KindNetwork Kind = "network"

	// KindAuthentication corresponds to HTTP 401.
	KindAuthentication Kind = "authentication"

	// KindAuthorization corresponds to HTTP 403.
	KindAuthorization Kind = "authorization"

	// KindNotFound corresponds to HTTP 404.
	KindNotFound Kind = "not_found"

	// KindValidation corresponds to HTTP 422.
	KindValidation Kind = "validation"

	// KindConflict corresponds to HTTP 409 and 412 (stale If-Match token).
	KindConflict Kind = "conflict"

	// KindAPI is the catch-all for any other non-2xx status.
	KindAPI Kind = "api"
)

// Error is the single error type returned by the gateway client.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string

	// Timeout is set on KindNetwork errors caused by an elapsed deadline.
	Timeout bool

	// Body is the decoded response body, retained for diagnostics.
	Body map[string]any

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.StatusCode > 0:
		return fmt.Sprintf("rt %s error (status %d): %s: %v", e.Kind, e.StatusCode, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("rt %s error: %s: %v", e.Kind, e.Message, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("rt %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("rt %s error: %s", e.Kind, e.Message)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// kindForStatus maps a non-success HTTP status code to an error Kind.
func kindForStatus(status int) Kind {
	switch status {
	case 401:
		return KindAuthentication
	case 403:
		return KindAuthorization
	case 404:
		return KindNotFound
	case 409, 412:
		return KindConflict
	case 422:
		return KindValidation
	default:
		return KindAPI
	}
}

// KindOf returns the Kind of err, or "" when err is not a gateway error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNetwork reports whether err is a transport or timeout failure.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

// IsAuthentication reports whether err is an HTTP 401 failure.
func IsAuthentication(err error) bool { return KindOf(err) == KindAuthentication }

// IsAuthorization reports whether err is an HTTP 403 failure.
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }

// IsNotFound reports whether err is an HTTP 404 failure.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is an HTTP 422 failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsConflict reports whether err is an optimistic-concurrency violation
// (HTTP 409 or 412).
func IsConflict(err error) bool { return KindOf(err) == KindConflict }
