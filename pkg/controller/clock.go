package controller

import "time"

// Clock abstracts timer scheduling so the autosave debounce is testable
// without wall-clock waits. Production code uses [SystemClock]; tests
// inject a manual clock and advance it explicitly.
type Clock interface {
	// AfterFunc schedules fn to run once after d, returning a handle that
	// can cancel the pending call.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable scheduled call.
type Timer interface {
	// Stop cancels the pending call. It reports whether the call was still
	// pending; stopping an already-fired timer is a no-op.
	Stop() bool
}

// SystemClock schedules on the runtime timer heap.
type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return (*systemTimer)(time.AfterFunc(d, fn))
}

type systemTimer time.Timer

func (t *systemTimer) Stop() bool {
	return (*time.Timer)(t).Stop()
}
