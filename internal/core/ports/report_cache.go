package ports

import (
	"context"
	"time"
)

// ReportCache memoizes report results by key.
type ReportCache interface {
	// Fetch returns the cached value for key decoded into dst, or calls load,
	// stores its result for ttl and decodes that. Concurrent misses on the
	// same key share one load. A cache outage falls back to load.
	//
	// Example:
	//
	//	var report queries.TopSalesResponse
	//	err := cache.Fetch(ctx, "warehouse:report:items:2023-01-01..2023-01-31", time.Minute, &report,
	//	    func(ctx context.Context) (any, error) {
	//	        return build(ctx)
	//	    })
	Fetch(ctx context.Context, key string, ttl time.Duration, dst any, load func(ctx context.Context) (any, error)) error
}
