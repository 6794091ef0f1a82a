package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techile/fieldportal/internal/domain/pricing"
)

const rateTableKey = "fieldportal:rates"

// RedisRateCache keeps the published rate table hot so pricing paths do
// not hit the settings table on every quote.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRateCache(client *redis.Client, ttl time.Duration) *RedisRateCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisRateCache{client: client, ttl: ttl}
}

func (c *RedisRateCache) Get(ctx context.Context) (pricing.RateTable, bool, error) {
	data, err := c.client.Get(ctx, rateTableKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.RateTable{}, false, nil
		}
		return pricing.RateTable{}, false, fmt.Errorf("failed to read rate cache: %w", err)
	}

	var rt pricing.RateTable
	if err := json.Unmarshal(data, &rt); err != nil {
		return pricing.RateTable{}, false, fmt.Errorf("failed to unmarshal cached rates: %w", err)
	}

	return rt, true, nil
}

func (c *RedisRateCache) Set(ctx context.Context, rt pricing.RateTable) error {
	data, err := json.Marshal(rt)
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}

	if err := c.client.Set(ctx, rateTableKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store rates in redis: %w", err)
	}

	return nil
}

func (c *RedisRateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, rateTableKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate rate cache: %w", err)
	}
	return nil
}
