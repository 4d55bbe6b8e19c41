package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/promo-event/internal/errs"
	"github.com/deppfellow/promo-event/internal/server"
	"github.com/deppfellow/promo-event/internal/validation"
)

// TracingMiddleware wires New Relic into Echo. nrApp is nil when New Relic
// is disabled.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request, or passes through.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds request attributes to the transaction and notices
// handler errors, tagging backend failures and rejected forms so they can be
// faceted apart. Must run after NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				for key, value := range errorAttributes(err) {
					txn.AddAttribute(key, value)
				}
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// errorAttributes classifies err for the transaction.
func errorAttributes(err error) map[string]interface{} {
	attrs := map[string]interface{}{}

	switch {
	case errs.IsNetworkError(err):
		attrs["backend.failure"] = "network"
	case errs.IsServerError(err):
		attrs["backend.failure"] = "server"
		var se *errs.ServerError
		if errors.As(err, &se) {
			attrs["backend.status_code"] = se.StatusCode
		}
	}

	var rejected *validation.SubmissionError
	if errors.As(err, &rejected) {
		attrs["form.invalid_fields"] = len(rejected.Fields.FieldErrors())
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		attrs["error.code"] = httpErr.Code
	}

	return attrs
}
