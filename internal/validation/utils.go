package validation

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/promo-event/internal/errs"
)

// Validatable is implemented by request payloads that check themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is one field-level failure.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate can return it.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// AsCustomErrors converts a ValidationErrors record; nil when it is valid.
func AsCustomErrors(v ValidationErrors) CustomValidationErrors {
	var out CustomValidationErrors
	for _, fe := range v.FieldErrors() {
		out = append(out, CustomValidationError{Field: fe.Field, Message: fe.Error})
	}
	return out
}

// BindAndValidate decodes the request body into payload (a pointer) and
// validates it. Failures come back as a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := Bind(c, payload); err != nil {
		return err
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// Bind decodes the request body into payload without validating it.
func Bind(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}
	return nil
}

func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request body"
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		fieldErrors := make([]errs.FieldError, 0, len(custom))
		for _, ce := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: ce.Field, Error: ce.Message})
		}
		return "Validation failed", fieldErrors
	}

	var submission *SubmissionError
	if errors.As(err, &submission) {
		return "Validation failed", submission.Fields.FieldErrors()
	}

	return fmt.Sprintf("Validation failed: %v", err), []errs.FieldError{}
}
