// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It has no external dependencies (especially
// no Bubble Tea or Ebiten) so that game logic stays pure and testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned box in world units. Y grows downward (deeper).
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// OverlapsX reports whether the horizontal extents overlap (open interval).
func (b Box) OverlapsX(other Box) bool {
	return b.Right() > other.X && b.X < other.Right()
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if !b.OverlapsX(other) {
		return false
	}
	return b.Bottom() > other.Y && b.Y < other.Bottom()
}

// IntersectsCircle approximates a circle of radius r at (cx, cy) by its
// bounding square and tests it against the box.
func (b Box) IntersectsCircle(cx, cy, r float64) bool {
	return b.Intersects(Box{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r})
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp moves from toward to by factor t (exponential smoothing step).
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
