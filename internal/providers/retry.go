package providers

import (
	"context"
	"time"
)

// RetryPolicy bounds retries of a model call. Only transient error
// classes (timeout, rate limit, unavailable) are retried.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
}

// DefaultRetryPolicy allows at most 2 retries with exponential backoff
// starting at one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, Backoff: time.Second}
}

// Retry runs fn up to 1+MaxRetries times, backing off exponentially
// between attempts. Non-transient errors return immediately.
func Retry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsTransient(lastErr) {
			return lastErr
		}
		if attempt < policy.MaxRetries {
			backoff := time.Duration(1<<uint(attempt)) * policy.Backoff
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
