package soroban

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds confirmation polling: at most MaxAttempts getTransaction
// calls spaced Interval apart, and never longer than Timeout overall.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
	Timeout     time.Duration
}

// DefaultRetryPolicy polls once per second for 30 attempts within 35 seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 30, Interval: time.Second, Timeout: 35 * time.Second}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.Interval <= 0 {
		p.Interval = def.Interval
	}
	if p.Timeout <= 0 {
		p.Timeout = def.Timeout
	}
	return p
}

// backOff returns a constant backoff bound to ctx that allows MaxAttempts
// calls of the operation in total.
func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), uint64(p.MaxAttempts-1))
	return backoff.WithContext(b, ctx)
}
