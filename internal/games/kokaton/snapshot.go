package kokaton

import "github.com/vovakirdan/kokaton/internal/core"

// HazardSnapshot is the observable state of one hazard.
type HazardSnapshot struct {
	X, Y   int // Center
	Radius int
	VX, VY int
	Color  core.Color
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame       int
	Phase       core.Phase
	Score       int
	PlayerX     int
	PlayerY     int
	Facing      Facing
	Mood        Mood
	Hazards     []HazardSnapshot
	Projectiles int
	Explosions  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       g.frame,
		Phase:       g.phase,
		Score:       g.score.Value(),
		Projectiles: len(g.projectiles),
		Explosions:  len(g.explosions),
	}

	if g.player != nil {
		snap.PlayerX, snap.PlayerY = g.player.Rect.Center()
		snap.Facing = g.player.Facing
		snap.Mood = g.player.Mood()
	}

	snap.Hazards = make([]HazardSnapshot, len(g.hazards))
	for i, h := range g.hazards {
		cx, cy := h.Center()
		snap.Hazards[i] = HazardSnapshot{X: cx, Y: cy, Radius: h.Radius, VX: h.VX, VY: h.VY, Color: h.Color}
	}

	return snap
}
