package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Body is the shared state of everything that drifts with a constant
// velocity: a collision rectangle and an integer velocity in pixels/frame.
type Body struct {
	Rect   core.Rect
	VX, VY int
}

// Move applies the velocity to the rectangle.
func (b *Body) Move() {
	b.Rect = b.Rect.Translate(b.VX, b.VY)
}

// Center returns the center of the body's rectangle.
func (b *Body) Center() (int, int) {
	return b.Rect.Center()
}
