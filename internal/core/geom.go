// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in field units, with Y growing downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that merely touch do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Inset returns a sub-rectangle expressed as fractions of this one:
// offset (fx, fy) from the top-left corner and size (fw, fh).
func (r Rect) Inset(fx, fy, fw, fh float64) Rect {
	return Rect{
		X: r.X + r.W*fx,
		Y: r.Y + r.H*fy,
		W: r.W * fw,
		H: r.H * fh,
	}
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
