package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/deppfellow/promo-event/internal/errs"
	"github.com/deppfellow/promo-event/internal/server"
)

// RateLimitMiddleware throttles form submissions per client IP.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// SubmitLimiter allows Server.SubmitRateLimit submissions per second with
// a burst of Server.SubmitBurst from each client IP. Counters live in Redis
// when it is configured and in process memory otherwise.
func (r *RateLimitMiddleware) SubmitLimiter() echo.MiddlewareFunc {
	return r.limiter(r.store())
}

func (r *RateLimitMiddleware) store() middleware.RateLimiterStore {
	cfg := r.server.Config.Server

	if r.server.Redis != nil {
		return NewRedisRateLimiterStore(r.server.Redis, cfg.SubmitRateLimit, cfg.SubmitBurst, r.server.Logger)
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.SubmitRateLimit),
		Burst:     cfg.SubmitBurst,
		ExpiresIn: 3 * time.Minute,
	})
}

func (r *RateLimitMiddleware) limiter(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Could not identify client", false, nil, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("client", identifier).
				Msg("submission rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many submissions")
		},
	})
}

// RecordRateLimitHit counts the hit in Prometheus and sends a RateLimitHit
// custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	r.server.Metrics.RecordRateLimitHit(endpoint)

	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
