package prefs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridboard/gridboard/pkg/retry"
)

// flakyStore fails the first failures calls to Update with a transient
// error, then delegates to an in-memory store.
type flakyStore struct {
	*MemoryStore
	failures int
	calls    int
}

func (s *flakyStore) Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, &retry.TransientError{Err: errors.New("connection reset")}
	}
	return s.MemoryStore.Update(ctx, key, patch)
}

func TestWithRetry_RecoversTransient(t *testing.T) {
	inner := &flakyStore{MemoryStore: NewMemoryStore(), failures: 2}
	store := WithRetry(inner, 3, time.Millisecond)

	theme := "dark"
	doc, err := store.Update(context.Background(), "k", Patch{Theme: &theme})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if doc.Theme != "dark" {
		t.Errorf("theme = %q, want dark", doc.Theme)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestWithRetry_GivesUpAfterAttempts(t *testing.T) {
	inner := &flakyStore{MemoryStore: NewMemoryStore(), failures: 10}
	store := WithRetry(inner, 2, time.Millisecond)

	theme := "dark"
	if _, err := store.Update(context.Background(), "k", Patch{Theme: &theme}); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2", inner.calls)
	}
}

func TestWithRetry_DefaultBackoff(t *testing.T) {
	inner := &flakyStore{MemoryStore: NewMemoryStore(), failures: 2}
	store := WithRetry(inner, 0, 0)

	theme := "dark"
	if _, err := store.Update(context.Background(), "k", Patch{Theme: &theme}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3 with the default schedule", inner.calls)
	}
}

func TestWithRetry_NotFoundPassesThrough(t *testing.T) {
	store := WithRetry(NewMemoryStore(), 3, time.Millisecond)
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
