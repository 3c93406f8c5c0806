// Package sim implements the seeker simulation: stationary items, one
// seeker chasing the nearest uneaten item, and the world that ticks them.
package sim

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/seeker/internal/config"
	"github.com/vovakirdan/seeker/internal/core"
)

// World owns the item collection and the seeker. All access goes through
// its mutex, so the tick task, renderers and input handlers can share it.
type World struct {
	mu sync.Mutex

	arena    core.Rect
	itemSize int
	seeker   *Seeker
	items    []*Item // append-only, insertion order
	rng      *rand.Rand

	tick     uint64
	consumed int
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Tick     uint64
	Target   int // index of the chased item, -1 when idle
	Phase    Phase
	Consumed bool
}

// Stats summarizes the world for HUDs and logs.
type Stats struct {
	Tick      uint64 `json:"tick"`
	Items     int    `json:"items"`
	Remaining int    `json:"remaining"`
	Consumed  int    `json:"consumed"`
}

// NewWorld creates a world with the seeker at the arena center and the
// configured number of initial items. A zero seed uses the current time.
func NewWorld(cfg config.SeekerConfig, seed int64) *World {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	arena := core.NewRect(0, 0, cfg.Arena.Width, cfg.Arena.Height)
	cx, cy := arena.Center()

	w := &World{
		arena:    arena,
		itemSize: cfg.Item.Size,
		seeker:   NewSeeker(float64(cx), float64(cy), cfg.Seeker.Size, cfg.Seeker.Speed),
		rng:      rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < cfg.Spawn.InitialItems; i++ {
		w.spawnRandomLocked()
	}
	return w
}

// Arena returns the arena bounds in pixels.
func (w *World) Arena() core.Rect {
	return w.arena
}

// Tick runs one simulation step: find the nearest item, then step toward it.
func (w *World) Tick() TickResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tick++
	res := TickResult{Tick: w.tick, Target: -1}

	target := w.seeker.FindNearest(w.items)
	if target == nil {
		return res
	}

	res.Target = w.indexOf(target)
	res.Phase = w.seeker.Phase(target)
	if w.seeker.StepToward(target) {
		w.consumed++
		res.Consumed = true
	}
	return res
}

// SpawnItemAtRandom appends an item at a uniformly random position, inset
// by half the item diameter so it renders fully inside the arena.
func (w *World) SpawnItemAtRandom() *Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spawnRandomLocked()
}

// SpawnItemAt appends an item at a caller-chosen position.
func (w *World) SpawnItemAt(x, y int) *Item {
	w.mu.Lock()
	defer w.mu.Unlock()

	it := NewItem(x, y, w.itemSize)
	w.items = append(w.items, it)
	return it
}

func (w *World) spawnRandomLocked() *Item {
	bounds := w.SpawnBounds()
	x := bounds.X + w.rng.Intn(bounds.W+1)
	y := bounds.Y + w.rng.Intn(bounds.H+1)

	it := NewItem(x, y, w.itemSize)
	w.items = append(w.items, it)
	return it
}

// SpawnBounds returns the closed range of valid item centers:
// [half, width-half] x [half, height-half], expressed as a Rect whose
// W and H are the inclusive spans.
func (w *World) SpawnBounds() core.Rect {
	return w.arena.Inset(w.itemSize / 2)
}

// Render reports the current frame: unconsumed items in insertion order,
// then the seeker on top. The returned stats describe the same frame.
func (w *World) Render(c Canvas) Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, it := range w.items {
		it.Render(c)
	}
	w.seeker.Render(c)
	return w.statsLocked()
}

// Stats returns counters for the current state.
func (w *World) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.statsLocked()
}

func (w *World) statsLocked() Stats {
	return Stats{
		Tick:      w.tick,
		Items:     len(w.items),
		Remaining: len(w.items) - w.consumed,
		Consumed:  w.consumed,
	}
}

func (w *World) indexOf(target *Item) int {
	for i, it := range w.items {
		if it == target {
			return i
		}
	}
	return -1
}
