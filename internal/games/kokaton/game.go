// Package kokaton implements a dodge-and-shoot arcade game.
// The player steers a bird around a fixed play field, dodging bouncing
// hazards and firing beams at them for points. Touching a hazard ends the game.
package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Game owns every entity collection and advances them one frame at a time.
type Game struct {
	cfg   config.KokatonConfig
	world core.Size
	atlas Atlas
	rng   *rand.Rand

	player      *Player
	hazards     []*Hazard
	projectiles []*Projectile
	explosions  []*Explosion
	score       Score

	phase core.Phase
	frame int
}

// New creates a game using the given configuration.
func New(cfg config.KokatonConfig) *Game {
	return &Game{
		cfg:   cfg,
		world: core.Size{W: cfg.World.Width, H: cfg.World.Height},
		atlas: DefaultAtlas(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kokaton"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fight! Kokaton"
}

// Reset initializes or restarts the game.
// The world size comes from the game config, not the terminal: the screen
// only affects how the world is scaled when rendered.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.PhasePlaying
	g.frame = 0
	g.score = Score{}
	g.projectiles = nil
	g.explosions = nil

	pc := g.cfg.Player
	g.player = NewPlayer(pc.X, pc.Y, pc.Width, pc.Height, pc.Speed)

	keepOut := g.player.Rect.Inflate(max(g.cfg.Hazards.SpawnClearance, 0))
	g.hazards = NewHazardSpawner(g.rng, g.cfg.Hazards, g.world).SpawnAll(keepOut)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	var events []core.Event

	// Fire commands queued since the last frame
	for i := 0; i < in.Count(core.ActionFire); i++ {
		g.projectiles = append(g.projectiles, NewProjectile(g.player.Rect, g.cfg.Projectile))
	}

	// Touching a hazard ends the game before anything else resolves
	if hit := g.hazardTouchingPlayer(); hit != nil {
		g.player.Defeat()
		g.phase = core.PhaseGameOver
		cx, cy := g.player.Rect.Center()
		events = append(events, core.Event{Kind: core.EventPlayerHit, X: cx, Y: cy})
		return core.StepResult{State: g.State(), Events: events}
	}

	events = g.resolveProjectileHits(events)

	g.updateExplosions()
	g.player.Update(in.Held, g.world)
	for _, h := range g.hazards {
		h.Update(g.world)
	}
	g.updateProjectiles()

	return core.StepResult{State: g.State(), Events: events}
}

// hazardTouchingPlayer returns the first hazard overlapping the player.
func (g *Game) hazardTouchingPlayer() *Hazard {
	for _, h := range g.hazards {
		if h.Rect.Intersects(g.player.Rect) {
			return h
		}
	}
	return nil
}

// resolveProjectileHits destroys every hazard struck by a projectile.
// Hazards are scanned in order and each takes the first unspent projectile
// touching it, so one projectile destroys at most one hazard per frame.
// Survivors are collected into fresh slices; the live collections never hold
// placeholders.
func (g *Game) resolveProjectileHits(events []core.Event) []core.Event {
	if len(g.projectiles) == 0 || len(g.hazards) == 0 {
		return events
	}

	spent := make([]bool, len(g.projectiles))
	survivors := make([]*Hazard, 0, len(g.hazards))

	for _, h := range g.hazards {
		hit := -1
		for i, p := range g.projectiles {
			if !spent[i] && p.Rect.Intersects(h.Rect) {
				hit = i
				break
			}
		}
		if hit < 0 {
			survivors = append(survivors, h)
			continue
		}

		spent[hit] = true
		cx, cy := h.Center()
		g.explosions = append(g.explosions, NewExplosion(cx, cy, g.cfg.Explosion.Life))
		g.player.Celebrate(g.cfg.Player.SuccessFrames)
		g.score.Increment()
		events = append(events, core.Event{Kind: core.EventHazardDestroyed, X: cx, Y: cy})
	}

	if len(survivors) == len(g.hazards) {
		return events
	}

	remaining := make([]*Projectile, 0, len(g.projectiles))
	for i, p := range g.projectiles {
		if !spent[i] {
			remaining = append(remaining, p)
		}
	}
	g.hazards = survivors
	g.projectiles = remaining
	return events
}

// updateExplosions advances every explosion and drops the expired ones.
func (g *Game) updateExplosions() {
	alive := g.explosions[:0]
	for _, e := range g.explosions {
		e.Update()
		if !e.Expired() {
			alive = append(alive, e)
		}
	}
	clear(g.explosions[len(alive):])
	g.explosions = alive
}

// updateProjectiles moves every projectile, then drops those that left the
// world. Moving and filtering are separate passes so none is skipped.
func (g *Game) updateProjectiles() {
	for _, p := range g.projectiles {
		p.Update()
	}

	visible := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Visible(g.world) {
			visible = append(visible, p)
		}
	}
	clear(g.projectiles[len(visible):])
	g.projectiles = visible
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.phase == core.PhaseGameOver,
		Frame:    g.frame,
	}
}

// Phase returns whether the game is still being played.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// World returns the play field size.
func (g *Game) World() core.Size {
	return g.world
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Hazards returns the live hazards.
func (g *Game) Hazards() []*Hazard {
	return g.hazards
}

// Projectiles returns the live projectiles.
func (g *Game) Projectiles() []*Projectile {
	return g.projectiles
}

// Explosions returns the running explosion effects.
func (g *Game) Explosions() []*Explosion {
	return g.explosions
}
