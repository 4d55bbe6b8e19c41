package validation

import (
	"strings"

	"github.com/deppfellow/promo-event/internal/errs"
)

// ValidationErrors has one message slot per form field. An empty slot means
// the field is valid.
type ValidationErrors struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AgreedTerms string `json:"agreedTerms"`
}

// Valid reports whether every slot is empty, i.e. the form may be submitted.
func (v ValidationErrors) Valid() bool {
	return v.Name == "" && v.Phone == "" && v.Email == "" && v.AgreedTerms == ""
}

// FieldErrors lists the non-empty slots in form order, keyed by JSON field
// name.
func (v ValidationErrors) FieldErrors() []errs.FieldError {
	var out []errs.FieldError
	add := func(field, msg string) {
		if msg != "" {
			out = append(out, errs.FieldError{Field: field, Error: msg})
		}
	}
	add("name", v.Name)
	add("phone", v.Phone)
	add("email", v.Email)
	add("agreedTerms", v.AgreedTerms)
	return out
}

// SubmissionError is returned when a form is rejected before it reaches the
// backend.
type SubmissionError struct {
	Fields ValidationErrors
}

func (e *SubmissionError) Error() string {
	var parts []string
	for _, fe := range e.Fields.FieldErrors() {
		parts = append(parts, fe.Field+": "+fe.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPError converts the rejection into a 400 with per-field errors.
func (e *SubmissionError) HTTPError() *errs.HTTPError {
	return errs.NewBadRequestError("Validation failed", true, nil, e.Fields.FieldErrors(), nil)
}
