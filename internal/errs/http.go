package errs

import "strings"

// FieldError is a validation message bound to a single form field.
//
//	{ "field": "phone", "error": "invalid phone format. (e.g. 010-1234-5678)" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType tells a client what to do next.
type ActionType string

const ActionTypeRetry ActionType = "retry"

// Action is an optional hint a UI may act on, e.g. offer a retry button
// when the backend is unreachable.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the response body of every failed request.
//
// Code is machine readable ("BAD_REQUEST", "BACKEND_UNREACHABLE"), Message is
// for humans, Status mirrors the HTTP status. Override lets the error handler
// know the message is safe to show as-is.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError, regardless of its code.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e carrying message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// MakeUpperCaseWithUnderscores turns "Bad Gateway" into "BAD_GATEWAY".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
