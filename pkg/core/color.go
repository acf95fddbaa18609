package core

// Color is an 8-bit RGBA color. Shapes carry one for display only; it never
// takes part in distance or intersection math.
type Color struct {
	R, G, B, A uint8
}

// Common colors
var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
	Red   = Color{R: 255, A: 255}
	Green = Color{G: 255, A: 255}
	Blue  = Color{B: 255, A: 255}
)

// NewColor creates an opaque color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}
