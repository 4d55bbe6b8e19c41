// Package router builds the Echo instance: middleware order, error handler
// and route registration.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/promo-event/internal/handler"
	"github.com/deppfellow/promo-event/internal/middleware"
	"github.com/deppfellow/promo-event/internal/server"
)

// NewRouter returns the configured Echo instance.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// RequestID first so every later middleware can log it; the context
	// enhancer needs the New Relic transaction to add trace ids.
	r.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(r, s, h)
	registerEventRoutes(r, h, middlewares)

	return r
}
