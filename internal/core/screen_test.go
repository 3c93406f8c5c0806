package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if b := s.Bounds(); b != NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v", b)
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorBrown)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorBrown {
		t.Errorf("GetCell(5, 5) = %+v, expected X/brown", cell)
	}

	// Out of bounds should be silent
	s.SetColored(-1, 0, 'A', ColorGreen)
	s.SetColored(100, 0, 'A', ColorGreen)
	s.SetColored(0, 100, 'A', ColorGreen)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out-of-bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillEllipseIn(s.Bounds(), 2, 2, 3, 3, '#', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(18, 0, "Hello", ColorGray)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
	if s.GetCell(18, 0).Color != ColorGray {
		t.Error("text should carry its color")
	}

	s.DrawTextCentered(2, "Hi", ColorGray)
	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Error("DrawTextCentered failed, text not at expected position")
	}

	// Text wider than the screen is clipped on both sides
	s.DrawTextCentered(4, "abcdefghijklmnopqrstuvwx", ColorGray)
	if s.GetCell(0, 4).Rune != 'c' || s.GetCell(19, 4).Rune != 'v' {
		t.Errorf("wide text row = %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.GetCell(3, 1).Color != ColorGray {
		t.Error("box edges should carry the box color")
	}
}

func TestScreenFillEllipse(t *testing.T) {
	s := NewScreen(21, 11)
	s.FillEllipseIn(s.Bounds(), 10.5, 5.5, 4, 2, 'o', ColorGreen)

	if s.GetCell(10, 5).Rune != 'o' {
		t.Error("ellipse center should be filled")
	}
	if s.GetCell(14, 5).Rune != 'o' || s.GetCell(6, 5).Rune != 'o' {
		t.Error("ellipse should reach its horizontal radius")
	}
	if s.GetCell(15, 5).Rune != ' ' || s.GetCell(10, 8).Rune != ' ' {
		t.Error("cells outside the ellipse should stay blank")
	}

	// Sub-cell ellipse still marks its own cell
	s.Clear()
	s.FillEllipseIn(s.Bounds(), 3.2, 3.7, 0.1, 0.1, '.', ColorBrown)
	if s.GetCell(3, 3).Rune != '.' {
		t.Error("tiny ellipse should mark the cell containing its center")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(0, 0).Rune != ' ' {
		t.Error("Resize should leave a blank buffer")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}
