package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnLayoutPass(ctx, 1280, 6, false, time.Millisecond)

	p := NoopPersistenceHooks{}
	p.OnSaveStart(ctx, "user-1")
	p.OnSaveComplete(ctx, "user-1", time.Millisecond, nil)
	p.OnSaveComplete(ctx, "user-1", time.Millisecond, errors.New("boom"))
}

type captureLayoutHooks struct {
	passes int
}

func (h *captureLayoutHooks) OnLayoutPass(_ context.Context, _, _ int, _ bool, _ time.Duration) {
	h.passes++
}

func TestSetLayoutHooks(t *testing.T) {
	capture := &captureLayoutHooks{}
	SetLayoutHooks(capture)
	defer SetLayoutHooks(nil)

	Layout().OnLayoutPass(context.Background(), 1024, 3, false, time.Millisecond)
	if capture.passes != 1 {
		t.Errorf("passes = %d, want 1", capture.passes)
	}
}

func TestSetNilRestoresNoop(t *testing.T) {
	SetLayoutHooks(&captureLayoutHooks{})
	SetLayoutHooks(nil)
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Errorf("Layout() = %T, want NoopLayoutHooks", Layout())
	}

	SetPersistenceHooks(nil)
	if _, ok := Persistence().(NoopPersistenceHooks); !ok {
		t.Errorf("Persistence() = %T, want NoopPersistenceHooks", Persistence())
	}
}
