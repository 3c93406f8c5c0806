package sim

import (
	"testing"

	"github.com/vovakirdan/seeker/internal/core"
)

func TestNewItemStartsUnconsumed(t *testing.T) {
	it := NewItem(15, 25, 20)
	if it.Consumed() {
		t.Error("new item should not be consumed")
	}
	if it.X() != 15 || it.Y() != 25 || it.Size() != 20 {
		t.Errorf("item = (%d, %d, %d), expected (15, 25, 20)", it.X(), it.Y(), it.Size())
	}
	if it.Pos() != core.V(15, 25) {
		t.Errorf("Pos() = %+v", it.Pos())
	}
}

func TestConsumeIsIdempotent(t *testing.T) {
	it := NewItem(0, 0, 20)
	it.Consume()
	if !it.Consumed() {
		t.Fatal("Consume() should mark the item consumed")
	}
	it.Consume()
	if !it.Consumed() {
		t.Error("second Consume() should leave the item consumed")
	}
	if it.X() != 0 || it.Y() != 0 || it.Size() != 20 {
		t.Error("Consume() should not touch position or size")
	}
}

func TestItemRender(t *testing.T) {
	var rec Recorder
	it := NewItem(40, 30, 20)
	it.Render(&rec)

	if len(rec.Circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(rec.Circles))
	}
	c := rec.Circles[0]
	if c.X != 40 || c.Y != 30 || c.Diameter != 20 || c.Color != ItemColor {
		t.Errorf("circle = %+v", c)
	}

	rec.Reset()
	it.Consume()
	it.Render(&rec)
	if len(rec.Circles) != 0 {
		t.Errorf("consumed item should not draw, got %d circles", len(rec.Circles))
	}
}
