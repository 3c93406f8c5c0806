package sim

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerTicksUntilCancelled(t *testing.T) {
	w := NewWorld(testConfig(), 5)

	var frames atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		World:    w,
		Interval: time.Millisecond,
		OnFrame: func(res TickResult) {
			if frames.Add(1) >= 10 {
				cancel()
			}
		},
	}

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after cancellation")
	}

	if frames.Load() < 10 {
		t.Errorf("expected at least 10 frames, got %d", frames.Load())
	}
	if got := w.Stats().Tick; got != uint64(frames.Load()) {
		t.Errorf("world ticked %d times but %d frames were reported", got, frames.Load())
	}
}

func TestRunnerReturnsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{World: NewWorld(testConfig(), 5)}
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner should return immediately for a cancelled context")
	}
}
