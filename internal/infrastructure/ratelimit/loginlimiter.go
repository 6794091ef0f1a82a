package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginKeyPrefix = "fieldportal:loginlimit:"

// RedisLoginLimiter throttles login attempts per account with a sliding
// window. A successful login resets the window.
type RedisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *RedisLoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow records an attempt and reports whether it is within the window
// budget.
func (l *RedisLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := loginKeyPrefix + key
	now := time.Now()
	windowStart := now.Add(-l.window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.maxAttempts), nil
}

// Reset clears the attempt window for a key.
func (l *RedisLoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, loginKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset login limiter: %w", err)
	}
	return nil
}
