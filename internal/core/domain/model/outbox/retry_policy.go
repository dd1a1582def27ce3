package outbox

import (
	"math"
	"time"
)

// RetryPolicy decides whether and when a failed export is tried again.
//
// MaxAttempts counts every attempt including the first: 0 retries forever,
// 1 never retries. Backoff doubles from BaseDelay per failed attempt and is
// capped at MaxDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy tries five times over roughly a quarter of an hour.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   30 * time.Second,
		MaxDelay:    10 * time.Minute,
	}
}

// AllowsRetry reports whether another attempt may follow the given number of
// attempts already made.
func (p RetryPolicy) AllowsRetry(attempts int) bool {
	return p.MaxAttempts <= 0 || attempts < p.MaxAttempts
}

// Backoff returns the delay before the attempt following attempts failures.
func (p RetryPolicy) Backoff(attempts int) time.Duration {
	if p.BaseDelay <= 0 {
		return 0
	}
	delay := p.BaseDelay
	for i := 1; i < attempts; i++ {
		if delay > math.MaxInt64/2 {
			return delay
		}
		delay *= 2
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}
