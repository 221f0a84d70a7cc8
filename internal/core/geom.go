// Package core provides fundamental types and utilities for the game.
// It imports nothing outside the standard library.
package core

// Rect represents an axis-aligned bounding box in world units.
// X, Y is the top-left corner; W and H are never negative.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle whose top-left corner is at pos.
func RectAt(pos Vector2, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether r and other overlap on both axes.
// Intervals are closed: rectangles that only touch along an edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X+r.W >= other.X && other.X+other.W >= r.X &&
		r.Y+r.H >= other.Y && other.Y+other.H >= r.Y
}

// Intersects is the free-function form of Rect.Intersects.
func Intersects(a, b Rect) bool {
	return a.Intersects(b)
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
