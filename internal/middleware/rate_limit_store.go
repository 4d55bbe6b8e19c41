package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisStoreTimeout = 500 * time.Millisecond

// RedisRateLimiterStore is an echo RateLimiterStore shared by every gateway
// replica. It counts requests per identifier in fixed windows of
// burst/rate seconds, allowing burst requests per window.
//
// When Redis cannot be reached the request is allowed.
type RedisRateLimiterStore struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	logger *zerolog.Logger
	now    func() time.Time
}

func NewRedisRateLimiterStore(client redis.Cmdable, perSecond float64, burst int, logger *zerolog.Logger) *RedisRateLimiterStore {
	window := time.Duration(float64(burst) / perSecond * float64(time.Second))
	if window < time.Second {
		window = time.Second
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &RedisRateLimiterStore{
		client: client,
		limit:  int64(burst),
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Allow implements middleware.RateLimiterStore.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisStoreTimeout)
	defer cancel()

	key := s.key(identifier, s.now())

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn().
			Err(err).
			Str("client", identifier).
			Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	return count.Val() <= s.limit, nil
}

func (s *RedisRateLimiterStore) key(identifier string, now time.Time) string {
	return fmt.Sprintf("promo-event:ratelimit:%s:%d", identifier, now.UnixNano()/int64(s.window))
}
