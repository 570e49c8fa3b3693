package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

// hazardPalette lists the colors a hazard may be drawn with.
var hazardPalette = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorWhite,
}

// maxSpawnAttempts bounds the re-rolls when a hazard lands on the player
// before it is moved into the widest free strip.
const maxSpawnAttempts = 32

// Hazard is a circular obstacle that bounces off the world edges.
type Hazard struct {
	Body
	Radius int
	Color  core.Color
}

// NewHazard creates a hazard of the given radius centered at (cx, cy).
func NewHazard(cx, cy, radius, vx, vy int, color core.Color) *Hazard {
	return &Hazard{
		Body: Body{
			Rect: core.CenteredAt(cx, cy, 2*radius, 2*radius),
			VX:   vx,
			VY:   vy,
		},
		Radius: radius,
		Color:  color,
	}
}

// Update reflects the velocity on each axis that is out of bounds, then moves.
// Reflecting first means the hazard heads back inside on the same frame it
// touched the edge.
func (h *Hazard) Update(world core.Size) {
	horizontal, vertical := core.InBounds(h.Rect, world)
	if !horizontal {
		h.VX = -h.VX
	}
	if !vertical {
		h.VY = -h.VY
	}
	h.Move()
}

// HazardSpawner creates hazards at random positions and velocities.
type HazardSpawner struct {
	rng   *rand.Rand
	cfg   config.HazardConfig
	world core.Size
}

// NewHazardSpawner creates a spawner that draws from rng.
func NewHazardSpawner(rng *rand.Rand, cfg config.HazardConfig, world core.Size) *HazardSpawner {
	return &HazardSpawner{rng: rng, cfg: cfg, world: world}
}

// SpawnAll creates the configured number of hazards.
// Hazards start fully inside the world and, when possible, outside keepOut.
func (s *HazardSpawner) SpawnAll(keepOut core.Rect) []*Hazard {
	hazards := make([]*Hazard, 0, s.cfg.Count)
	for i := 0; i < s.cfg.Count; i++ {
		hazards = append(hazards, s.Spawn(keepOut))
	}
	return hazards
}

// Spawn creates a single hazard.
func (s *HazardSpawner) Spawn(keepOut core.Rect) *Hazard {
	radius := s.between(s.cfg.MinRadius, s.cfg.MaxRadius)
	color := hazardPalette[s.rng.Intn(len(hazardPalette))]

	var cx, cy int
	free := false
	for attempt := 0; attempt < maxSpawnAttempts && !free; attempt++ {
		cx = s.between(radius, s.world.W-radius)
		cy = s.between(radius, s.world.H-radius)
		free = !core.CenteredAt(cx, cy, 2*radius, 2*radius).Intersects(keepOut)
	}
	if !free {
		cx, cy = s.beside(keepOut, radius, cx, cy)
	}

	vx := s.direction() * s.cfg.Speed
	vy := s.direction() * s.cfg.Speed
	return NewHazard(cx, cy, radius, vx, vy, color)
}

// beside moves (cx, cy) into the widest strip of the world left free by
// keepOut. The point is returned unchanged when no strip fits the hazard.
func (s *HazardSpawner) beside(keepOut core.Rect, radius, cx, cy int) (int, int) {
	left, right, top, bottom := core.Margins(keepOut, s.world)
	switch widest := max(left, right, top, bottom); {
	case widest < 2*radius:
		return cx, cy
	case widest == left:
		return s.between(radius, left-radius), cy
	case widest == right:
		return s.between(keepOut.Right()+radius, s.world.W-radius), cy
	case widest == top:
		return cx, s.between(radius, top-radius)
	default:
		return cx, s.between(keepOut.Bottom()+radius, s.world.H-radius)
	}
}

// between returns a uniform integer in [lo, hi].
func (s *HazardSpawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// direction returns -1 or +1.
func (s *HazardSpawner) direction() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
