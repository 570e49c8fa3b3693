package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Valid reports whether p names a known preset.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty converts a flag value to a preset.
// An empty string means "keep whatever the config file says".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" || p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// HazardCountForPreset returns the number of hazards spawned at game start.
// Hazard speed is never scaled; only the count changes.
func HazardCountForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 8
	default:
		return 5
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *KokatonConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
	cfg.Hazards.Count = HazardCountForPreset(preset)
}
