// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout passes and preference saves.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetPersistenceHooks(&myPersistenceHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// LayoutHooks receives events from layout passes.
type LayoutHooks interface {
	// OnLayoutPass fires after a full optimize-and-resolve pass.
	// residual reports whether the collision retry cap was exhausted.
	OnLayoutPass(ctx context.Context, width, components int, residual bool, elapsed time.Duration)
}

// PersistenceHooks receives events from preference saves.
type PersistenceHooks interface {
	OnSaveStart(ctx context.Context, key string)
	OnSaveComplete(ctx context.Context, key string, elapsed time.Duration, err error)
}

// NoopLayoutHooks is the default LayoutHooks implementation.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutPass(context.Context, int, int, bool, time.Duration) {}

// NoopPersistenceHooks is the default PersistenceHooks implementation.
type NoopPersistenceHooks struct{}

func (NoopPersistenceHooks) OnSaveStart(context.Context, string) {}

func (NoopPersistenceHooks) OnSaveComplete(context.Context, string, time.Duration, error) {}

var (
	mu               sync.RWMutex
	layoutHooks      LayoutHooks      = NoopLayoutHooks{}
	persistenceHooks PersistenceHooks = NoopPersistenceHooks{}
)

// SetLayoutHooks registers layout hooks. Nil restores the no-op default.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopLayoutHooks{}
	}
	layoutHooks = h
}

// SetPersistenceHooks registers persistence hooks. Nil restores the no-op default.
func SetPersistenceHooks(h PersistenceHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopPersistenceHooks{}
	}
	persistenceHooks = h
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Persistence returns the registered persistence hooks.
func Persistence() PersistenceHooks {
	mu.RLock()
	defer mu.RUnlock()
	return persistenceHooks
}
