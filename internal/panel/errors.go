package panel

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies a panel API error.
type ErrorType int

const (
	// ErrRequest indicates the request could not be sent or no response arrived.
	ErrRequest ErrorType = iota
	// ErrStatus indicates the panel answered with an unexpected status code.
	ErrStatus
	// ErrAuth indicates the API key was rejected (401/403).
	ErrAuth
	// ErrNotFound indicates the resource does not exist (404).
	ErrNotFound
	// ErrRateLimited indicates the panel throttled the request (429).
	ErrRateLimited
	// ErrDecode indicates the response body could not be decoded.
	ErrDecode
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrRequest:
		return "RequestFailed"
	case ErrStatus:
		return "UnexpectedStatus"
	case ErrAuth:
		return "AuthFailed"
	case ErrNotFound:
		return "NotFound"
	case ErrRateLimited:
		return "RateLimited"
	case ErrDecode:
		return "DecodeFailed"
	default:
		return "Unknown"
	}
}

// maxBodyExcerpt bounds how much of a non-JSON error body is kept.
const maxBodyExcerpt = 200

// Error is returned by every Client method that fails.
type Error struct {
	// Type is the error classification.
	Type ErrorType
	// Method is the HTTP method of the failed call.
	Method string
	// Path is the API path of the failed call, relative to the panel URL.
	Path string
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	// Body is the response body: verbatim when JSON, otherwise an excerpt.
	Body string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("panel %s %s [%s]", e.Method, e.Path, e.Type)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: HTTP %d %s", msg, e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// statusErrorType maps a non-success status code to an ErrorType.
func statusErrorType(code int) ErrorType {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrStatus
	}
}

// IsType reports whether err is a panel Error of the given type.
func IsType(err error, typ ErrorType) bool {
	var panelErr *Error
	return errors.As(err, &panelErr) && panelErr.Type == typ
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var panelErr *Error
	if errors.As(err, &panelErr) {
		return panelErr.StatusCode
	}
	return 0
}
