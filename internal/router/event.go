package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/promo-event/internal/handler"
	"github.com/deppfellow/promo-event/internal/middleware"
)

// registerEventRoutes registers the event API under /api/v1.
func registerEventRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	v1 := r.Group("/api/v1")

	v1.GET("/event", h.Event.GetEventInfo())
	v1.GET("/rewards", h.Event.GetRewards())
	v1.GET("/fortune", h.Event.GetFortuneList())

	v1.POST("/info", h.Event.SubmitInfo(), m.RateLimit.SubmitLimiter())
	v1.POST("/info/validate", h.Event.CheckInfo())
}
