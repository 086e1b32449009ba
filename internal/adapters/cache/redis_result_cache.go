package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"delivery-analytics-service/internal/domain"
)

// Redis-backed implementation of the ResultCache port. The UI recomputes on
// every filter change, so identical filter sets within the TTL are served
// from the cached bundle instead of refolding the whole record set.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{Client: client, TTL: ttl}
}

func (c *RedisResultCache) GetResult(ctx context.Context, key string) (*domain.AnalysisResult, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("redis result cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result: redis get %q: %w", key, err)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("get result: decode cached payload for %q: %w", key, err)
	}

	return &result, true, nil
}

func (c *RedisResultCache) SetResult(ctx context.Context, key string, result *domain.AnalysisResult) error {
	if c.Client == nil {
		return errors.New("redis result cache: client is nil")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("set result: encode payload for %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("set result: redis set %q: %w", key, err)
	}

	return nil
}
