package kokaton

import (
	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
)

// Projectile is a beam fired horizontally from the player.
type Projectile struct {
	Body
}

// NewProjectile creates a projectile whose center sits on the shooter's right
// edge at the shooter's vertical center.
func NewProjectile(shooter core.Rect, cfg config.ProjectileConfig) *Projectile {
	_, cy := shooter.Center()
	return &Projectile{
		Body: Body{
			Rect: core.CenteredAt(shooter.Right(), cy, cfg.Width, cfg.Height),
			VX:   cfg.Speed,
			VY:   0,
		},
	}
}

// Update moves the projectile. There is no reflection; the game drops it
// once it is no longer visible.
func (p *Projectile) Update() {
	p.Move()
}

// Visible reports whether any part of the projectile is inside the world.
func (p *Projectile) Visible(world core.Size) bool {
	return p.Rect.Intersects(world.Rect())
}
