package prefs

import (
	"context"
	"time"

	"github.com/gridboard/gridboard/pkg/retry"
)

// RetryingStore decorates a Store with bounded retry for transient backend
// failures. Errors not marked transient by the backend pass through
// unchanged, as does ErrNotFound.
type RetryingStore struct {
	inner    Store
	attempts int
	delay    time.Duration
}

// WithRetry wraps a store with retry. Non-positive attempts use the
// default backoff schedule of [retry.WithBackoff].
func WithRetry(inner Store, attempts int, delay time.Duration) *RetryingStore {
	return &RetryingStore{inner: inner, attempts: attempts, delay: delay}
}

func (s *RetryingStore) retry(ctx context.Context, fn func() error) error {
	if s.attempts <= 0 {
		return retry.WithBackoff(ctx, fn)
	}
	return retry.Do(ctx, s.attempts, s.delay, fn)
}

func (s *RetryingStore) Get(ctx context.Context, key string) (*LayoutDocument, error) {
	var doc *LayoutDocument
	err := s.retry(ctx, func() error {
		var err error
		doc, err = s.inner.Get(ctx, key)
		return err
	})
	return doc, err
}

func (s *RetryingStore) Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error) {
	var doc *LayoutDocument
	err := s.retry(ctx, func() error {
		var err error
		doc, err = s.inner.Update(ctx, key, patch)
		return err
	})
	return doc, err
}

func (s *RetryingStore) Delete(ctx context.Context, key string) error {
	return s.retry(ctx, func() error {
		return s.inner.Delete(ctx, key)
	})
}

func (s *RetryingStore) Close() error {
	return s.inner.Close()
}

var _ Store = (*RetryingStore)(nil)
