package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the simulation and the HUD.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrown
	ColorGray
)

// String returns the palette name, used in observer frames.
func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorBrown:
		return "brown"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
