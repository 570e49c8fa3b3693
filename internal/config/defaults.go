package config

import (
	_ "embed"
)

//go:embed defaults/kokaton.yaml
var defaultKokatonYAML []byte

// DefaultKokatonConfig returns the default game configuration.
func DefaultKokatonConfig() KokatonConfig {
	return KokatonConfig{
		World: WorldConfig{
			Width:  1600,
			Height: 900,
		},
		Player: PlayerConfig{
			X:             900,
			Y:             400,
			Width:         100,
			Height:        100,
			Speed:         5,
			SuccessFrames: 25,
		},
		Hazards: HazardConfig{
			Count:          5,
			MinRadius:      20,
			MaxRadius:      60,
			Speed:          5,
			SpawnClearance: 150,
		},
		Projectile: ProjectileConfig{
			Width:  80,
			Height: 20,
			Speed:  5,
		},
		Explosion: ExplosionConfig{
			Life: 20,
		},
		Timing: TimingConfig{
			FPS:             50,
			GameOverDelayMS: 1000,
		},
		Input: InputConfig{
			HoldFrames: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultKokatonYAML
}
