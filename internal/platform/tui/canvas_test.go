package tui

import (
	"testing"

	"github.com/vovakirdan/seeker/internal/core"
)

func TestScreenCanvasProjection(t *testing.T) {
	screen := core.NewScreen(82, 32)
	viewport := core.NewRect(1, 1, 80, 30)
	c := NewScreenCanvas(screen, viewport, core.NewRect(0, 0, 800, 600))

	x, y := c.Project(400, 300)
	if x != 41 || y != 16 {
		t.Errorf("Project(center) = (%f, %f), expected (41, 16)", x, y)
	}

	// Positions on the far edge stay inside the viewport
	x, y = c.Project(800, 600)
	if !viewport.Contains(int(x), int(y)) {
		t.Errorf("Project(edge) = (%f, %f) escapes viewport", x, y)
	}
}

func TestScreenCanvasFillCircle(t *testing.T) {
	screen := core.NewScreen(82, 32)
	viewport := core.NewRect(1, 1, 80, 30)
	c := NewScreenCanvas(screen, viewport, core.NewRect(0, 0, 800, 600))

	c.FillCircle(400, 300, 40, core.ColorGreen)

	center := screen.GetCell(41, 16)
	if center.Rune != DiscChar || center.Color != core.ColorGreen {
		t.Errorf("center cell = %+v", center)
	}
	// 40px diameter is 4 cells wide at 0.1 cells/px: nothing 4 cells away
	if screen.GetCell(46, 16).Rune != ' ' {
		t.Error("disc should not extend beyond its radius")
	}
}

func TestScreenCanvasClipsToViewport(t *testing.T) {
	screen := core.NewScreen(12, 12)
	screen.DrawBox(core.NewRect(0, 0, 12, 12), core.ColorGray)
	viewport := core.NewRect(1, 1, 10, 10)
	c := NewScreenCanvas(screen, viewport, core.NewRect(0, 0, 100, 100))

	// Big disc in the corner would spill over the frame if unclipped
	c.FillCircle(0, 0, 80, core.ColorBrown)

	if screen.GetCell(0, 0).Rune != '┌' || screen.GetCell(5, 0).Rune != '─' || screen.GetCell(0, 5).Rune != '│' {
		t.Error("disc overwrote the frame")
	}
	if screen.GetCell(1, 1).Rune != DiscChar {
		t.Error("disc should fill the viewport corner")
	}
}

func TestScreenCanvasEmptyViewport(t *testing.T) {
	screen := core.NewScreen(4, 4)
	c := NewScreenCanvas(screen, core.NewRect(0, 0, 0, 0), core.NewRect(0, 0, 800, 600))
	c.FillCircle(400, 300, 40, core.ColorBrown)
	if screen.String() != "    \n    \n    \n    " {
		t.Error("empty viewport should draw nothing")
	}
}
