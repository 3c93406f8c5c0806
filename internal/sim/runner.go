package sim

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultInterval is the tick period used when none is configured (~33 ticks/s).
const DefaultInterval = 30 * time.Millisecond

// Runner drives a World on a fixed period. Each tick is followed by a
// call to OnFrame, the redraw request to whatever renders the world.
type Runner struct {
	World    *World
	Interval time.Duration
	OnFrame  func(TickResult)
	Logger   *log.Logger
}

// Run ticks until ctx is cancelled. Cancellation is the normal shutdown
// path and is not reported as an error.
func (r *Runner) Run(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Debug("runner started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("runner stopped", "ticks", r.World.Stats().Tick)
			return
		case <-ticker.C:
			res := r.World.Tick()
			if res.Consumed {
				logger.Debug("item consumed", "tick", res.Tick, "item", res.Target)
			}
			if r.OnFrame != nil {
				r.OnFrame(res)
			}
		}
	}
}
