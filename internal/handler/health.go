package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/promo-event/internal/middleware"
	"github.com/deppfellow/promo-event/internal/server"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports whether the gateway can reach its dependencies.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth answers 200 when the backend responds to the health path (and
// Redis to PING, when configured) and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]interface{}{}
	response["checks"] = checks
	healthy := true

	backendStart := time.Now()
	if err := h.server.Backend.Ping(ctx); err != nil {
		healthy = false
		checks["backend"] = h.failedCheck(logger, "backend", backendStart, err)
	} else {
		checks["backend"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(backendStart).String(),
		}
	}

	if h.server.Redis != nil {
		redisStart := time.Now()
		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			healthy = false
			checks["redis"] = h.failedCheck(logger, "redis", redisStart, err)
		} else {
			checks["redis"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(redisStart).String(),
			}
		}
	}

	if !healthy {
		response["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) failedCheck(logger zerolog.Logger, check string, start time.Time, err error) map[string]interface{} {
	elapsed := time.Since(start)

	logger.Error().
		Err(err).
		Str("check", check).
		Dur("response_time", elapsed).
		Msg("health check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       check,
			"operation":        "health_check",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return map[string]interface{}{
		"status":        "unhealthy",
		"response_time": elapsed.String(),
		"error":         err.Error(),
	}
}
