package queries

import (
	"context"
	"time"

	"warehouse/internal/core/ports"
)

const cacheKeyPrefix = "warehouse:report:"

// cached is embedded by report handlers that can serve results from a
// ports.ReportCache.
type cached struct {
	cache ports.ReportCache
	ttl   time.Duration
}

func (c *cached) setCache(cache ports.ReportCache, ttl time.Duration) {
	if ttl <= 0 {
		cache = nil
	}
	c.cache = cache
	c.ttl = ttl
}

// fetch returns load's result, going through the cache when one is set.
func fetch[T any](
	ctx context.Context,
	c cached,
	key string,
	load func(ctx context.Context) (T, error),
) (T, error) {
	if c.cache == nil {
		return load(ctx)
	}

	var out T
	err := c.cache.Fetch(ctx, cacheKeyPrefix+key, c.ttl, &out, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	return out, err
}
