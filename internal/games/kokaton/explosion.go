package kokaton

// explosionFrames are the visuals cycled by an explosion, in order.
var explosionFrames = []SpriteKey{SpriteExplosion0, SpriteExplosion1}

// Explosion is a short-lived effect left where a hazard was destroyed.
type Explosion struct {
	X, Y  int // Center in world units
	Frame int // Index into explosionFrames
	Life  int // Frames left
}

// NewExplosion creates an explosion centered at (x, y) lasting life frames.
func NewExplosion(x, y, life int) *Explosion {
	return &Explosion{X: x, Y: y, Life: max(life, 0)}
}

// Update advances the animation and burns one frame of life.
// Past the last visual the animation holds on it while life keeps counting.
func (e *Explosion) Update() {
	if e.Life <= 0 {
		return
	}
	e.Frame++
	if e.Frame >= len(explosionFrames) {
		e.Frame = len(explosionFrames) - 1
	}
	e.Life--
}

// Expired reports whether the explosion should be removed.
func (e *Explosion) Expired() bool {
	return e.Life <= 0
}

// SpriteKey returns the current animation frame's asset.
func (e *Explosion) SpriteKey() SpriteKey {
	return explosionFrames[e.Frame]
}
