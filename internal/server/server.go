// Package server holds the application container and runs the HTTP server.
//
// It owns the lifecycle of:
//   - configuration
//   - logger and the optional New Relic application
//   - the event backend client and its Prometheus metrics
//   - the optional Redis client behind the submission rate limiter
//   - the http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/promo-event/internal/config"
	"github.com/deppfellow/promo-event/internal/lib/backend"
	"github.com/deppfellow/promo-event/internal/lib/metrics"
	loggerPkg "github.com/deppfellow/promo-event/internal/logger"
)

// Server is the container of shared resources. It is not the HTTP server
// itself; that is built by SetupHTTPServer.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// Backend is the shared client of the event REST backend.
	Backend *backend.Client
	Metrics *metrics.Metrics

	// Redis is nil unless redis.address is configured.
	Redis *redis.Client

	httpServer *http.Server
}

// New builds the container. The backend is not dialed here; it is first
// contacted by a request or the health check.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	m := metrics.New()

	client, err := backend.New(cfg.Backend, logger,
		backend.WithSlowThreshold(cfg.Observability.Logging.SlowRequestThreshold),
		backend.WithObserver(m),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backend client: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Backend:       client,
		Metrics:       m,
		Redis:         newRedis(cfg.Redis, logger, loggerService),
	}, nil
}

// newRedis returns nil when no address is configured. A failed ping is
// logged and startup continues; the rate limiter then fails open.
func newRedis(cfg config.RedisConfig, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	if cfg.Address == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Address).Msg("failed to connect to Redis, continuing")
	}

	return client
}

// SetupHTTPServer configures the net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving requests. SetupHTTPServer must be called first.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("backend", s.Backend.BaseURL()).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires, then flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to close Redis client")
		}
	}

	s.LoggerService.Shutdown()
	return nil
}
