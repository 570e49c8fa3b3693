package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to fit the terminal and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Frame    int  // Number of simulated frames
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventHazardDestroyed EventKind = iota + 1
	EventPlayerHit
)

func (k EventKind) String() string {
	switch k {
	case EventHazardDestroyed:
		return "hazard_destroyed"
	case EventPlayerHit:
		return "player_hit"
	default:
		return "unknown"
	}
}

// Event is reported by Step so the platform can log without the game
// depending on a logger.
type Event struct {
	Kind EventKind
	X, Y int // World position where it happened
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
