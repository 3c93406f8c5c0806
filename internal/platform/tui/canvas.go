package tui

import (
	"github.com/vovakirdan/seeker/internal/core"
	"github.com/vovakirdan/seeker/internal/sim"
)

// DiscChar is the glyph used to fill circles.
const DiscChar = '█'

// ScreenCanvas projects arena pixels onto a rectangle of terminal cells.
// Circles become ellipses in cell space because the axes scale independently.
type ScreenCanvas struct {
	screen   *core.Screen
	viewport core.Rect
	sx, sy   float64 // cells per pixel
}

var _ sim.Canvas = (*ScreenCanvas)(nil)

// NewScreenCanvas maps an arena onto viewport (in screen cells).
func NewScreenCanvas(screen *core.Screen, viewport, arena core.Rect) *ScreenCanvas {
	c := &ScreenCanvas{screen: screen, viewport: viewport}
	if arena.W > 0 && arena.H > 0 {
		c.sx = float64(viewport.W) / float64(arena.W)
		c.sy = float64(viewport.H) / float64(arena.H)
	}
	return c
}

// Project converts an arena position into continuous cell coordinates.
func (c *ScreenCanvas) Project(x, y float64) (float64, float64) {
	cx := float64(c.viewport.X) + core.ClampF(x*c.sx, 0, float64(c.viewport.W)-0.5)
	cy := float64(c.viewport.Y) + core.ClampF(y*c.sy, 0, float64(c.viewport.H)-0.5)
	return cx, cy
}

// FillCircle draws a filled ellipse clipped to the viewport, so discs near
// the border never overwrite the frame around it.
func (c *ScreenCanvas) FillCircle(x, y float64, diameter int, color core.Color) {
	if c.viewport.W <= 0 || c.viewport.H <= 0 {
		return
	}
	cx, cy := c.Project(x, y)
	r := float64(diameter) / 2
	c.screen.FillEllipseIn(c.viewport, cx, cy, r*c.sx, r*c.sy, DiscChar, color)
}
