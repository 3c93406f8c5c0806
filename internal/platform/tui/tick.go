// Package tui provides the Bubble Tea shell for the seeker simulation.
// It renders frames produced by a sim.Runner and forwards the spawn key.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seeker/internal/sim"
)

// FrameMsg is delivered after each simulation tick to request a redraw.
type FrameMsg sim.TickResult

// FrameSink returns a Runner.OnFrame callback that publishes tick results
// to ch without blocking. Pending frames are coalesced: if the UI has not
// picked up the previous frame, the newer one is dropped.
func FrameSink(ch chan<- sim.TickResult) func(sim.TickResult) {
	return func(res sim.TickResult) {
		select {
		case ch <- res:
		default:
		}
	}
}

// waitForFrame returns a command that blocks until the next frame arrives.
// It returns nil once the channel is closed.
func waitForFrame(frames <-chan sim.TickResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-frames
		if !ok {
			return nil
		}
		return FrameMsg(res)
	}
}
