package kokaton

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

var testWorld = core.Size{W: 1600, H: 900}

func TestFacingFor(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   Facing
	}{
		{+5, 0, FacingRight},
		{+5, -5, FacingUpRight},
		{0, -5, FacingUp},
		{-5, -5, FacingUpLeft},
		{-5, 0, FacingLeft},
		{-5, +5, FacingDownLeft},
		{0, +5, FacingDown},
		{+5, +5, FacingDownRight},
		{0, 0, FacingNeutral},
	}
	for _, tc := range tests {
		if got := FacingFor(tc.dx, tc.dy); got != tc.want {
			t.Errorf("FacingFor(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestPlayerMovesAndFaces(t *testing.T) {
	tests := []struct {
		name   string
		held   core.DirectionSet
		dx, dy int
		facing Facing
	}{
		{"right", core.HeldDirections(core.DirRight), 5, 0, FacingRight},
		{"up", core.HeldDirections(core.DirUp), 0, -5, FacingUp},
		{"down left", core.HeldDirections(core.DirDown, core.DirLeft), -5, 5, FacingDownLeft},
		{"up right", core.HeldDirections(core.DirUp, core.DirRight), 5, -5, FacingUpRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(900, 400, 100, 100, 5)
			before := p.Rect
			p.Update(tc.held, testWorld)

			if p.Rect != before.Translate(tc.dx, tc.dy) {
				t.Errorf("Rect = %+v, expected %+v", p.Rect, before.Translate(tc.dx, tc.dy))
			}
			if p.Facing != tc.facing {
				t.Errorf("Facing = %v, expected %v", p.Facing, tc.facing)
			}
		})
	}
}

func TestPlayerOppositeKeysCancel(t *testing.T) {
	p := NewPlayer(900, 400, 100, 100, 5)
	p.Facing = FacingDown
	before := p.Rect

	p.Update(core.HeldDirections(core.DirLeft, core.DirRight), testWorld)

	if p.Rect != before {
		t.Errorf("left+right should cancel, moved to %+v", p.Rect)
	}
	if p.Facing != FacingDown {
		t.Errorf("standing still should keep facing, got %v", p.Facing)
	}

	// Vertical still applies when horizontal cancels
	p.Update(core.HeldDirections(core.DirLeft, core.DirRight, core.DirUp), testWorld)
	if p.Rect != before.Translate(0, -5) || p.Facing != FacingUp {
		t.Errorf("expected pure up move, got %+v facing %v", p.Rect, p.Facing)
	}
}

func TestPlayerMovementIsAllOrNothing(t *testing.T) {
	// Flush against the left wall, well inside vertically
	p := &Player{Rect: core.NewRect(0, 400, 100, 100), Facing: FacingRight, Speed: 5}

	// Up is fine on its own, but left is blocked: the whole move is reverted
	p.Update(core.HeldDirections(core.DirUp, core.DirLeft), testWorld)

	if p.Rect != core.NewRect(0, 400, 100, 100) {
		t.Errorf("blocked diagonal should not slide, got %+v", p.Rect)
	}
	if p.Facing != FacingRight {
		t.Errorf("blocked move should keep facing, got %v", p.Facing)
	}
}

func TestPlayerStaysInWorld(t *testing.T) {
	p := NewPlayer(900, 400, 100, 100, 5)
	held := core.HeldDirections(core.DirDown, core.DirRight)
	for i := 0; i < 1000; i++ {
		p.Update(held, testWorld)
		if h, v := core.InBounds(p.Rect, testWorld); !h || !v {
			t.Fatalf("player left the world at step %d: %+v", i, p.Rect)
		}
	}
	if p.Rect.Bottom() != testWorld.H && p.Rect.Right() != testWorld.W {
		t.Errorf("player should end against a wall, got %+v", p.Rect)
	}
}

func TestPlayerMood(t *testing.T) {
	p := NewPlayer(900, 400, 100, 100, 5)
	if p.SpriteKey() != SpritePlayerRight {
		t.Errorf("neutral player should use the right-facing sprite, got %q", p.SpriteKey())
	}

	p.Celebrate(2)
	if p.SpriteKey() != SpritePlayerSuccess {
		t.Errorf("expected success sprite, got %q", p.SpriteKey())
	}
	p.Update(core.DirectionSet{}, testWorld)
	p.Update(core.DirectionSet{}, testWorld)
	if p.Mood() != MoodNormal {
		t.Errorf("success should wear off, mood = %v", p.Mood())
	}

	p.Defeat()
	p.Celebrate(10)
	if p.SpriteKey() != SpritePlayerDefeated {
		t.Errorf("defeat is final, got %q", p.SpriteKey())
	}
}

func TestHazardBouncesOffLeftWall(t *testing.T) {
	h := NewHazard(30, 400, 30, -5, 5, core.ColorRed)
	// Push it just past the wall, as the previous frame's move would have
	h.Rect.X = -5

	h.Update(testWorld)

	if h.VX != 5 {
		t.Errorf("VX = %d, expected +5 after bounce", h.VX)
	}
	if h.VY != 5 {
		t.Errorf("VY should be untouched, got %d", h.VY)
	}
	if h.Rect.X != 0 {
		t.Errorf("X = %d, expected 0 after moving back in", h.Rect.X)
	}
}

func TestHazardStaysContained(t *testing.T) {
	h := NewHazard(30, 30, 30, -5, -5, core.ColorBlue)
	for i := 0; i < 5000; i++ {
		h.Update(testWorld)
		// One step past an edge is allowed; it is reflected the next frame
		if h.Rect.X < -5 || h.Rect.Right() > testWorld.W+5 || h.Rect.Y < -5 || h.Rect.Bottom() > testWorld.H+5 {
			t.Fatalf("hazard escaped at step %d: %+v", i, h.Rect)
		}
	}
}

func TestHazardSpawner(t *testing.T) {
	cfg := config.DefaultKokatonConfig().Hazards
	keepOut := core.CenteredAt(900, 400, 100, 100).Inflate(cfg.SpawnClearance)
	spawner := NewHazardSpawner(rand.New(rand.NewSource(7)), cfg, testWorld)

	hazards := spawner.SpawnAll(keepOut)
	if len(hazards) != cfg.Count {
		t.Fatalf("spawned %d hazards, expected %d", len(hazards), cfg.Count)
	}

	type fingerprint struct {
		radius int
		color  core.Color
		x, y   int
	}
	seen := make(map[fingerprint]bool)

	for i, h := range hazards {
		if h.Radius < cfg.MinRadius || h.Radius > cfg.MaxRadius {
			t.Errorf("hazard %d radius %d out of range", i, h.Radius)
		}
		if (h.VX != cfg.Speed && h.VX != -cfg.Speed) || (h.VY != cfg.Speed && h.VY != -cfg.Speed) {
			t.Errorf("hazard %d velocity (%d, %d) should be ±%d", i, h.VX, h.VY, cfg.Speed)
		}
		if hIn, vIn := core.InBounds(h.Rect, testWorld); !hIn || !vIn {
			t.Errorf("hazard %d spawned outside the world: %+v", i, h.Rect)
		}
		if h.Rect.Intersects(keepOut) {
			t.Errorf("hazard %d spawned on top of the player: %+v", i, h.Rect)
		}
		fp := fingerprint{h.Radius, h.Color, h.Rect.X, h.Rect.Y}
		if seen[fp] {
			t.Errorf("hazard %d duplicates another: %+v", i, fp)
		}
		seen[fp] = true
	}
}

func TestHazardSpawnerCrowdedWorld(t *testing.T) {
	cfg := config.DefaultKokatonConfig().Hazards
	cfg.Count = 50

	// Each keep-out area leaves one strip just wide enough for the largest hazard
	tests := []struct {
		name    string
		keepOut core.Rect
	}{
		{"left strip", core.NewRect(130, 0, 1470, 900)},
		{"right strip", core.NewRect(0, 0, 1470, 900)},
		{"top strip", core.NewRect(0, 130, 1600, 770)},
		{"bottom strip", core.NewRect(0, 0, 1600, 770)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spawner := NewHazardSpawner(rand.New(rand.NewSource(3)), cfg, testWorld)
			for i, h := range spawner.SpawnAll(tc.keepOut) {
				if h.Rect.Intersects(tc.keepOut) {
					t.Errorf("hazard %d spawned inside the keep-out area: %+v", i, h.Rect)
				}
				if hIn, vIn := core.InBounds(h.Rect, testWorld); !hIn || !vIn {
					t.Errorf("hazard %d spawned outside the world: %+v", i, h.Rect)
				}
			}
		})
	}
}

func TestProjectileFromPlayer(t *testing.T) {
	cfg := config.DefaultKokatonConfig().Projectile
	shooter := core.CenteredAt(900, 400, 100, 100)

	p := NewProjectile(shooter, cfg)
	cx, cy := p.Center()
	if cx != shooter.Right() || cy != 400 {
		t.Errorf("projectile center = (%d, %d), expected (%d, 400)", cx, cy, shooter.Right())
	}
	if p.VX != 5 || p.VY != 0 {
		t.Errorf("velocity = (%d, %d), expected (5, 0)", p.VX, p.VY)
	}

	p.Update()
	if cx2, _ := p.Center(); cx2 != cx+5 {
		t.Errorf("projectile should move 5 to the right, center x = %d", cx2)
	}
}

func TestProjectileVisibility(t *testing.T) {
	p := &Projectile{Body: Body{Rect: core.NewRect(1590, 400, 80, 20), VX: 5}}
	if !p.Visible(testWorld) {
		t.Error("partially inside projectile should be visible")
	}
	p.Update()
	p.Update()
	if p.Visible(testWorld) {
		t.Errorf("projectile at %+v should be gone", p.Rect)
	}
}

func TestExplosionLifecycle(t *testing.T) {
	e := NewExplosion(100, 200, 20)

	if e.SpriteKey() != SpriteExplosion0 {
		t.Errorf("first frame should be %q", SpriteExplosion0)
	}

	for i := 1; i <= 20; i++ {
		if e.Expired() {
			t.Fatalf("expired early, before update %d", i)
		}
		e.Update()
		if e.Life < 0 || e.Life > 20 {
			t.Fatalf("life %d out of range", e.Life)
		}
		if e.SpriteKey() != SpriteExplosion1 {
			t.Errorf("frame should clamp to the last visual, got %q", e.SpriteKey())
		}
	}
	if !e.Expired() {
		t.Error("explosion should expire after exactly 20 updates")
	}

	// Further updates are no-ops
	e.Update()
	if e.Life != 0 {
		t.Errorf("life should stay at 0, got %d", e.Life)
	}
}

func TestScoreIncrement(t *testing.T) {
	var s Score
	if s.Value() != 0 {
		t.Fatalf("new score = %d", s.Value())
	}
	s.Increment()
	s.Increment()
	if s.Value() != 2 {
		t.Errorf("Value() = %d, expected 2", s.Value())
	}
}
