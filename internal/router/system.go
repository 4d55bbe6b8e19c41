package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/promo-event/internal/handler"
	"github.com/deppfellow/promo-event/internal/server"
	"github.com/deppfellow/promo-event/static"
)

// registerSystemRoutes registers health, metrics and documentation endpoints.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", static.Files)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if m := s.Config.Observability.Metrics; m.Enabled {
		r.GET(m.Path, echo.WrapHandler(s.Metrics.Handler()))
	}
}
