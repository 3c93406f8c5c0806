package sim

import "github.com/vovakirdan/seeker/internal/core"

// ItemColor is the fill color of unconsumed items.
const ItemColor = core.ColorBrown

// Item is a stationary consumable. Position and size never change;
// consumed flips from false to true at most once.
type Item struct {
	x, y     int
	size     int
	consumed bool
}

// NewItem creates an unconsumed item. Callers guarantee size > 0.
func NewItem(x, y, size int) *Item {
	return &Item{x: x, y: y, size: size}
}

// X returns the horizontal position of the item's center.
func (it *Item) X() int { return it.x }

// Y returns the vertical position of the item's center.
func (it *Item) Y() int { return it.y }

// Size returns the item's diameter in pixels.
func (it *Item) Size() int { return it.size }

// Pos returns the item's center as a vector.
func (it *Item) Pos() core.Vec {
	return core.V(float64(it.x), float64(it.y))
}

// Consume marks the item as eaten. Calling it again is a no-op.
func (it *Item) Consume() {
	it.consumed = true
}

// Consumed reports whether the item has been eaten.
func (it *Item) Consumed() bool {
	return it.consumed
}

// Render draws the item unless it has been consumed.
func (it *Item) Render(c Canvas) {
	if it.consumed {
		return
	}
	c.FillCircle(float64(it.x), float64(it.y), it.size, ItemColor)
}
