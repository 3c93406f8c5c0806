package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seeker/internal/config"
	"github.com/vovakirdan/seeker/internal/core"
	"github.com/vovakirdan/seeker/internal/sim"
)

// Minimum terminal size that still fits the HUD, a frame and the help line.
// The screen buffer holds only the framed arena; the HUD and help lines
// are rendered around it.
const (
	minScreenW = 20
	minScreenH = 6
)

// emptyHint is drawn in the middle of the arena once every item is eaten.
const emptyHint = "press q to drop an item"


// Model is the Bubble Tea model for one simulation session.
// The world is ticked by a sim.Runner in the background; the model only
// renders it and forwards the spawn key.
type Model struct {
	world  *sim.World
	frames <-chan sim.TickResult
	cancel context.CancelFunc
	done   <-chan struct{}
	logger *log.Logger

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	width  int
	height int

	last     sim.TickResult
	quitting bool
}

// StartSession creates a world from cfg and starts its runner. The runner
// stops when ctx is cancelled or the user quits.
func StartSession(ctx context.Context, cfg config.SeekerConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(ctx)

	world := sim.NewWorld(cfg, rt.Seed)
	frames := make(chan sim.TickResult, 1)
	runner := &sim.Runner{
		World:    world,
		Interval: cfg.Interval(),
		OnFrame:  FrameSink(frames),
		Logger:   logger,
	}

	logger.Info("session started", "seed", rt.Seed, "tick_rate", rt.TickRate,
		"screen", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))

	// The runner is the only sender on frames, so it closes the channel
	// once it returns and any pending waitForFrame unblocks.
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(frames)
		runner.Run(ctx)
	}()

	m := NewModel(world, frames, cancel, rt, logger)
	m.done = done
	return m
}

// NewModel creates a model over an existing world and frame source.
func NewModel(world *sim.World, frames <-chan sim.TickResult, cancel context.CancelFunc, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cancel == nil {
		cancel = func() {}
	}
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		world:  world,
		frames: frames,
		cancel: cancel,
		logger: logger,
		screen: core.NewScreen(rt.ScreenW, arenaRows(rt.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   h,
		width:  rt.ScreenW,
		height: rt.ScreenH,
		last:   sim.TickResult{Target: -1},
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, arenaRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.last = sim.TickResult(msg)
		return m, waitForFrame(m.frames)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.ActionSpawn:
		it := m.world.SpawnItemAtRandom()
		m.logger.Debug("item spawned", "x", it.X(), "y", it.Y())
	}
	return m, nil
}

// View renders the world into the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minScreenW || m.height < minScreenH {
		return fmt.Sprintf("Window too small (%dx%d). Need at least %dx%d.", m.width, m.height, minScreenW, minScreenH)
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.width, max(m.height-1-lipgloss.Height(helpView), 0))
	m.screen.Clear()

	frame := m.screen.Bounds()
	m.screen.DrawBox(frame, core.ColorGray)
	canvas := NewScreenCanvas(m.screen, frame.Inset(1), m.world.Arena())
	stats := m.world.Render(canvas)
	if stats.Remaining == 0 && len(emptyHint) <= frame.W-2 {
		m.screen.DrawTextCentered(frame.H/2, emptyHint, core.ColorGray)
	}

	return hudStyle.Render(m.hud(stats)) + "\n" +
		RenderScreen(m.screen) + "\n" +
		helpView
}

// arenaRows is the screen height left after the HUD and help lines.
func arenaRows(height int) int {
	return max(height-2, 0)
}

// hud returns the status line shown above the arena.
func (m Model) hud(stats sim.Stats) string {
	line := fmt.Sprintf(" items %d  eaten %d  tick %d  %s",
		stats.Remaining, stats.Consumed, stats.Tick, m.last.Phase)
	if len(line) > m.width {
		line = line[:m.width]
	}
	return line
}

// Stop cancels the session's runner and waits for it to exit.
func (m Model) Stop() {
	m.cancel()
	if m.done != nil {
		<-m.done
	}
}

// Run starts a local session and blocks until the user quits.
func Run(ctx context.Context, cfg config.SeekerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := StartSession(ctx, cfg, rt, logger)
	defer model.Stop()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
