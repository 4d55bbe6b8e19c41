package middleware

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/promo-event/internal/errs"
	"github.com/deppfellow/promo-event/internal/validation"
)

func TestErrorAttributes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]interface{}
	}{
		{
			name: "network",
			err:  fmt.Errorf("get_event_info: %w", &errs.NetworkError{Err: errors.New("refused")}),
			want: map[string]interface{}{"backend.failure": "network"},
		},
		{
			name: "server",
			err:  &errs.ServerError{StatusCode: 503},
			want: map[string]interface{}{"backend.failure": "server", "backend.status_code": 503},
		},
		{
			name: "rejected form",
			err:  &validation.SubmissionError{Fields: validation.ValidationErrors{Name: "x", Email: "y"}},
			want: map[string]interface{}{"form.invalid_fields": 2},
		},
		{
			name: "http error",
			err:  errs.NewTooManyRequestsError("slow down"),
			want: map[string]interface{}{"error.code": "TOO_MANY_REQUESTS"},
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorAttributes(tt.err))
		})
	}
}
