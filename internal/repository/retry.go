package repository

import (
	"context"
	"time"
)

const (
	retryBaseDelay   = time.Second
	retryMaxAttempts = 3
)

// sleepFn is swapped out in tests.
var sleepFn = sleepCtx

// withRetry runs fn, retrying transient failures with exponential backoff
// (1s base, doubled per attempt, at most 3 attempts). Backoff never extends
// past the context deadline: when the next wait would cross it, the last
// error is returned immediately.
func withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	delay := retryBaseDelay
	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if classify(err) != KindTransient || attempt >= retryMaxAttempts {
			return wrap(op, err)
		}
		if deadline, ok := ctx.Deadline(); ok && time.Now().Add(delay).After(deadline) {
			return wrap(op, err)
		}
		if serr := sleepFn(ctx, delay); serr != nil {
			return wrap(op, err)
		}
		delay *= 2
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
