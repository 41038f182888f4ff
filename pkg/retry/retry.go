// Package retry provides bounded retry with exponential backoff for
// transient store failures.
package retry

import (
	"context"
	"errors"
	"time"
)

// TransientError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, connection resets) with this
// type so that [Do] knows to attempt the operation again.
type TransientError struct{ Err error }

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// Do executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [TransientError]; other errors are
// returned immediately. The delay doubles after each failed attempt.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Do(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isTransient(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// WithBackoff is a convenience wrapper around [Do] with sensible defaults:
// 3 attempts with 100ms initial delay (doubling each retry).
func WithBackoff(ctx context.Context, fn func() error) error {
	return Do(ctx, 3, 100*time.Millisecond, fn)
}

func isTransient(err error) bool {
	return errors.As(err, new(*TransientError))
}
