package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// Facing is the discrete orientation of the player sprite.
type Facing int

const (
	FacingNeutral Facing = iota
	FacingRight
	FacingUpRight
	FacingUp
	FacingUpLeft
	FacingLeft
	FacingDownLeft
	FacingDown
	FacingDownRight
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingUpRight:
		return "UpRight"
	case FacingUp:
		return "Up"
	case FacingUpLeft:
		return "UpLeft"
	case FacingLeft:
		return "Left"
	case FacingDownLeft:
		return "DownLeft"
	case FacingDown:
		return "Down"
	case FacingDownRight:
		return "DownRight"
	default:
		return "Neutral"
	}
}

// facingBySign is indexed by [sign(dy)+1][sign(dx)+1].
var facingBySign = [3][3]Facing{
	{FacingUpLeft, FacingUp, FacingUpRight},
	{FacingLeft, FacingNeutral, FacingRight},
	{FacingDownLeft, FacingDown, FacingDownRight},
}

// FacingFor maps a displacement to the facing it produces.
// A zero displacement maps to FacingNeutral.
func FacingFor(dx, dy int) Facing {
	return facingBySign[core.Sign(dy)+1][core.Sign(dx)+1]
}

// directionDelta is the unit displacement of each held direction.
var directionDelta = map[core.Direction][2]int{
	core.DirUp:    {0, -1},
	core.DirDown:  {0, +1},
	core.DirLeft:  {-1, 0},
	core.DirRight: {+1, 0},
}

// Mood overrides the facing sprite for a while.
type Mood int

const (
	MoodNormal Mood = iota
	MoodSuccess
	MoodDefeated
)

// Player is the sprite steered by the held direction keys.
type Player struct {
	Rect   core.Rect
	Facing Facing
	Speed  int

	mood      Mood
	moodTicks int // Frames left for MoodSuccess
}

// NewPlayer creates a player of size w×h centered at (cx, cy).
func NewPlayer(cx, cy, w, h, speed int) *Player {
	return &Player{
		Rect:   core.CenteredAt(cx, cy, w, h),
		Facing: FacingNeutral,
		Speed:  speed,
	}
}

// Displacement sums the contributions of every held direction.
// Opposite directions cancel out.
func (p *Player) Displacement(held core.DirectionSet) (dx, dy int) {
	for _, d := range core.Directions {
		if !held.Has(d) {
			continue
		}
		delta := directionDelta[d]
		dx += delta[0] * p.Speed
		dy += delta[1] * p.Speed
	}
	return dx, dy
}

// Update moves the player by the held directions.
// Movement is all-or-nothing: if the moved rectangle would leave the world on
// either axis the player stays put and keeps its facing.
func (p *Player) Update(held core.DirectionSet, world core.Size) {
	p.tickMood()

	dx, dy := p.Displacement(held)
	if dx == 0 && dy == 0 {
		return
	}

	moved := p.Rect.Translate(dx, dy)
	if h, v := core.InBounds(moved, world); !h || !v {
		return
	}

	p.Rect = moved
	p.Facing = FacingFor(dx, dy)
}

// Celebrate shows the success sprite for the given number of frames.
func (p *Player) Celebrate(frames int) {
	if p.mood == MoodDefeated {
		return
	}
	p.mood = MoodSuccess
	p.moodTicks = frames
}

// Defeat switches to the defeated sprite for good.
func (p *Player) Defeat() {
	p.mood = MoodDefeated
	p.moodTicks = 0
}

// Mood returns the current sprite override.
func (p *Player) Mood() Mood {
	return p.mood
}

func (p *Player) tickMood() {
	if p.mood != MoodSuccess {
		return
	}
	p.moodTicks--
	if p.moodTicks <= 0 {
		p.mood = MoodNormal
		p.moodTicks = 0
	}
}

// SpriteKey returns the asset used to draw the player right now.
func (p *Player) SpriteKey() SpriteKey {
	switch p.mood {
	case MoodDefeated:
		return SpritePlayerDefeated
	case MoodSuccess:
		return SpritePlayerSuccess
	}
	return FacingSprite(p.Facing)
}
