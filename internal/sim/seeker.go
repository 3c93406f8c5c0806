package sim

import (
	"math"

	"github.com/vovakirdan/seeker/internal/core"
)

// SeekerColor is the fill color of the seeker.
const SeekerColor = core.ColorGreen

// Phase describes the seeker's relationship to its current target.
type Phase int

const (
	PhaseIdle    Phase = iota // no unconsumed item
	PhaseSeeking              // target farther than one step
	PhaseArrived              // target within one step, consumed this tick
)

// String returns a short label for HUDs and observer frames.
func (p Phase) String() string {
	switch p {
	case PhaseSeeking:
		return "seeking"
	case PhaseArrived:
		return "arrived"
	default:
		return "idle"
	}
}

// Seeker is the single moving agent. Position is kept in float64 so that
// repeated fractional steps do not drift from the straight line.
type Seeker struct {
	pos   core.Vec
	size  int
	speed int
}

// NewSeeker creates a seeker at (x, y). Size and speed are fixed for its lifetime.
func NewSeeker(x, y float64, size, speed int) *Seeker {
	return &Seeker{pos: core.V(x, y), size: size, speed: speed}
}

// Pos returns the seeker's current position.
func (s *Seeker) Pos() core.Vec { return s.pos }

// Size returns the seeker's diameter in pixels.
func (s *Seeker) Size() int { return s.size }

// Speed returns the distance covered per tick in pixels.
func (s *Seeker) Speed() int { return s.speed }

// FindNearest returns the unconsumed item closest to the seeker, or nil
// if there is none. Ties go to the earliest item in the slice.
func (s *Seeker) FindNearest(items []*Item) *Item {
	var nearest *Item
	best := math.MaxFloat64
	for _, it := range items {
		if it.Consumed() {
			continue
		}
		d := s.pos.Dist(it.Pos())
		if d < best {
			best = d
			nearest = it
		}
	}
	return nearest
}

// Phase classifies the target relative to one step of movement.
func (s *Seeker) Phase(target *Item) Phase {
	if target == nil {
		return PhaseIdle
	}
	if s.pos.Dist(target.Pos()) > float64(s.speed) {
		return PhaseSeeking
	}
	return PhaseArrived
}

// StepToward advances one tick toward target. When the target is within
// speed (distance <= speed, including zero) it is consumed and the seeker
// does not move. Returns true if the target was consumed. A nil target is a no-op.
func (s *Seeker) StepToward(target *Item) bool {
	if target == nil {
		return false
	}

	delta := target.Pos().Sub(s.pos)
	d := delta.Len()
	speed := float64(s.speed)

	if d > speed {
		s.pos = s.pos.Add(delta.Scale(speed / d))
		return false
	}

	target.Consume()
	return true
}

// Render draws the seeker.
func (s *Seeker) Render(c Canvas) {
	c.FillCircle(s.pos.X, s.pos.Y, s.size, SeekerColor)
}
