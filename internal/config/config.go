// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/kokaton/internal/core"
)

// KokatonConfig contains all configuration for the game.
type KokatonConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// WorldConfig defines the fixed play field in world units (pixels).
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player sprite's spawn point, hitbox and speed.
type PlayerConfig struct {
	X             int `yaml:"x"` // Spawn center
	Y             int `yaml:"y"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Speed         int `yaml:"speed"`          // Pixels per frame per held key
	SuccessFrames int `yaml:"success_frames"` // How long the success sprite shows after a hit
}

// HazardConfig defines how hazards are spawned.
type HazardConfig struct {
	Count          int `yaml:"count"`
	MinRadius      int `yaml:"min_radius"`
	MaxRadius      int `yaml:"max_radius"`
	Speed          int `yaml:"speed"`           // Each axis gets +speed or -speed
	SpawnClearance int `yaml:"spawn_clearance"` // Keep-out margin around the player spawn
}

// ProjectileConfig defines the projectile hitbox and horizontal speed.
type ProjectileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// ExplosionConfig defines how long explosion effects stay on screen.
type ExplosionConfig struct {
	Life int `yaml:"life"` // Frames
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FPS             int `yaml:"fps"`
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
}

// GameOverDelay returns the hold time after a defeat.
func (t TimingConfig) GameOverDelay() time.Duration {
	return time.Duration(t.GameOverDelayMS) * time.Millisecond
}

// InputConfig tunes how held keys are reconstructed from terminal key presses.
type InputConfig struct {
	HoldFrames int `yaml:"hold_frames"`
}

// Validate reports every setting that would make the simulation misbehave.
func (c KokatonConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("hazards.min_radius", c.Hazards.MinRadius)
	positive("hazards.speed", c.Hazards.Speed)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("projectile.speed", c.Projectile.Speed)
	positive("explosion.life", c.Explosion.Life)
	positive("timing.fps", c.Timing.FPS)
	positive("input.hold_frames", c.Input.HoldFrames)

	if c.Hazards.Count < 0 {
		errs = append(errs, fmt.Errorf("hazards.count must not be negative, got %d", c.Hazards.Count))
	}
	if c.Hazards.MaxRadius < c.Hazards.MinRadius {
		errs = append(errs, fmt.Errorf("hazards.max_radius (%d) is below min_radius (%d)",
			c.Hazards.MaxRadius, c.Hazards.MinRadius))
	}
	if 2*c.Hazards.MaxRadius > c.World.Width || 2*c.Hazards.MaxRadius > c.World.Height {
		errs = append(errs, fmt.Errorf("hazards.max_radius %d does not fit in a %dx%d world",
			c.Hazards.MaxRadius, c.World.Width, c.World.Height))
	}
	if c.Hazards.SpawnClearance < 0 {
		errs = append(errs, fmt.Errorf("hazards.spawn_clearance must not be negative, got %d", c.Hazards.SpawnClearance))
	}
	errs = append(errs, c.validateSpawn()...)
	if c.Timing.GameOverDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.game_over_delay_ms must not be negative, got %d", c.Timing.GameOverDelayMS))
	}
	if c.Difficulty != "" && !c.Difficulty.Valid() {
		errs = append(errs, fmt.Errorf("unknown difficulty %q", c.Difficulty))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// validateSpawn checks that the player starts inside the world and that the
// keep-out area around it leaves a strip wide enough for the largest hazard.
func (c KokatonConfig) validateSpawn() []error {
	world := core.Size{W: c.World.Width, H: c.World.Height}
	player := core.CenteredAt(c.Player.X, c.Player.Y, c.Player.Width, c.Player.Height)

	if h, v := core.InBounds(player, world); !h || !v {
		return []error{fmt.Errorf("player spawn %dx%d at (%d, %d) does not fit in a %dx%d world",
			c.Player.Width, c.Player.Height, c.Player.X, c.Player.Y, world.W, world.H)}
	}

	left, right, top, bottom := core.Margins(player.Inflate(max(c.Hazards.SpawnClearance, 0)), world)
	if room := max(left, right, top, bottom); room < 2*c.Hazards.MaxRadius {
		return []error{fmt.Errorf("hazards.spawn_clearance %d leaves %d units beside the player, need %d for max_radius %d",
			c.Hazards.SpawnClearance, max(room, 0), 2*c.Hazards.MaxRadius, c.Hazards.MaxRadius)}
	}
	return nil
}
