package retry

import (
	"context"
	"time"
)

// Policy is a fixed-delay retry policy gated by a predicate. It exists so
// the "retry once after 1s on a forbidden response" rule is written once
// instead of being inlined next to every resource fetch.
type Policy struct {
	// MaxAttempts is the total number of attempts, first call included.
	// Values below 1 behave as 1.
	MaxAttempts int
	// Delay is the pause between attempts.
	Delay time.Duration
	// Retryable decides whether an error is worth another attempt. A nil
	// predicate retries nothing.
	Retryable func(error) bool
}

// Do runs fn until it succeeds, the policy is exhausted, the error is not
// retryable, or ctx is done. The last error is returned.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			return err
		}
		if waitErr := sleep(ctx, p.Delay); waitErr != nil {
			return err
		}
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
