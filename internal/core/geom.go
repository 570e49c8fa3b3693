// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Size is the extent of a fixed play area in world units.
type Size struct {
	W, H int
}

// Rect returns the area as a rectangle anchored at the origin.
func (s Size) Rect() Rect {
	return Rect{W: s.W, H: s.H}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredAt creates a w×h rectangle whose center is (cx, cy).
func CenteredAt(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Margins returns the free space between r and the left, right, top and
// bottom edges of the world. A negative margin means r sticks out that side.
func Margins(r Rect, world Size) (left, right, top, bottom int) {
	return r.X, world.W - r.Right(), r.Y, world.H - r.Bottom()
}

// InBounds reports, per axis, whether r lies within the world area.
// horizontal is false when the left edge is negative or the right edge passes
// world.W; vertical is false when the top edge is negative or the bottom edge
// passes world.H.
func InBounds(r Rect, world Size) (horizontal, vertical bool) {
	horizontal, vertical = true, true
	if r.X < 0 || r.Right() > world.W {
		horizontal = false
	}
	if r.Y < 0 || r.Bottom() > world.H {
		vertical = false
	}
	return horizontal, vertical
}

// Clamp restricts val to [lo, hi]. When hi < lo the result is lo.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// Sign returns -1, 0, or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
