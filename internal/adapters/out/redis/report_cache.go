// Package redis caches report results in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// ReportCache is a cache-aside ports.ReportCache over Redis. Values are
// stored as JSON. Concurrent misses on one key are collapsed into a single
// load, and an unreachable Redis degrades to loading every time.
type ReportCache struct {
	rdb    redis.Cmdable
	group  singleflight.Group
	logger *slog.Logger
}

func NewReportCache(rdb redis.Cmdable, logger *slog.Logger) *ReportCache {
	return &ReportCache{
		rdb:    rdb,
		logger: logger.With("component", "report_cache"),
	}
}

func (c *ReportCache) Fetch(
	ctx context.Context,
	key string,
	ttl time.Duration,
	dst any,
	load func(ctx context.Context) (any, error),
) error {
	cached, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err = json.Unmarshal(cached, dst); err == nil {
			return nil
		}
		c.logger.WarnContext(ctx, "dropping undecodable cache entry", "key", key, "error", err)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		value, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}

		body, marshalErr := json.Marshal(value)
		if marshalErr != nil {
			return nil, fmt.Errorf("encode %s: %w", key, marshalErr)
		}

		if setErr := c.rdb.Set(ctx, key, body, ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
		return body, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(v.([]byte), dst)
}
