// AngelaMos | 2026
// cache.go

package admin

import (
	"context"
	"time"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

const statsCacheKey = "admin:stats"

type Cache interface {
	Get(ctx context.Context) (*Stats, bool, error)
	Set(ctx context.Context, stats *Stats) error
}

type RedisCache struct {
	redis *core.Redis
	ttl   time.Duration
}

func NewRedisCache(redis *core.Redis, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: redis, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (*Stats, bool, error) {
	var stats Stats
	found, err := c.redis.GetJSON(ctx, statsCacheKey, &stats)
	if err != nil || !found {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *RedisCache) Set(ctx context.Context, stats *Stats) error {
	return c.redis.SetJSON(ctx, statsCacheKey, stats, c.ttl)
}

var _ Cache = (*RedisCache)(nil)
