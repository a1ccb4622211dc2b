package core

// Color is an RGB triple. Components are unbounded; clamping happens when
// the image is encoded.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply scales every component
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard product, used to tint a surface color by a light
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp interpolates from c towards other by t
func (c Color) Lerp(other Color, t float64) Color {
	return c.Add(other.Subtract(c).Multiply(t))
}

// ApproxEqual compares component-wise within Tolerance
func (c Color) ApproxEqual(other Color) bool {
	return approxEqual(c.R, other.R) && approxEqual(c.G, other.G) && approxEqual(c.B, other.B)
}
