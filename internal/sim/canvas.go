package sim

import "github.com/vovakirdan/seeker/internal/core"

// Canvas is the rendering capability the simulation reports to.
// Coordinates are arena pixels; diameter is in pixels.
type Canvas interface {
	FillCircle(x, y float64, diameter int, c core.Color)
}

// Circle is one recorded FillCircle call.
type Circle struct {
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Diameter int        `json:"d"`
	Color    core.Color `json:"-"`
	ColorTag string     `json:"color"`
}

// Recorder is a Canvas that keeps every draw call in order.
type Recorder struct {
	Circles []Circle
}

// FillCircle records the call.
func (r *Recorder) FillCircle(x, y float64, diameter int, c core.Color) {
	r.Circles = append(r.Circles, Circle{
		X:        x,
		Y:        y,
		Diameter: diameter,
		Color:    c,
		ColorTag: c.String(),
	})
}

// Reset drops recorded calls, keeping the backing array.
func (r *Recorder) Reset() {
	r.Circles = r.Circles[:0]
}
