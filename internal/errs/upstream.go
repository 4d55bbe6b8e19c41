package errs

import (
	"errors"
	"fmt"
)

const (
	CodeBackendUnreachable = "BACKEND_UNREACHABLE"
	CodeBackendError       = "BACKEND_ERROR"
)

// NetworkError is a transport failure talking to the event backend: the
// request never produced an HTTP response (dial, DNS, reset, timeout,
// cancelled context).
type NetworkError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a response from the event backend that could not be used:
// a non-2xx status, or a 2xx whose body did not decode. Err is set in the
// latter case.
type ServerError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *ServerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: server error: %s %s: status %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: server error: %s %s: status %d", e.Op, e.Method, e.URL, e.StatusCode)
}

func (e *ServerError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err wraps a *NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsServerError reports whether err wraps a *ServerError.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// FromUpstream translates a data access failure into the HTTPError the
// gateway answers with. ok is false when err is not a backend failure.
func FromUpstream(err error) (httpErr *HTTPError, ok bool) {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return NewBadGatewayError(CodeBackendUnreachable, "Event backend is unreachable"), true
	}

	var se *ServerError
	if errors.As(err, &se) {
		return NewBadGatewayError(CodeBackendError, fmt.Sprintf("Event backend answered with status %d", se.StatusCode)), true
	}

	return nil, false
}
