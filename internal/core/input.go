package core

// Action represents a discrete game command, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionFire        // Space - launch a projectile
	ActionQuit        // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is a logical movement direction, independent of key codes.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	directionCount
)

// Directions lists every Direction in a stable order.
var Directions = [directionCount]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// DirectionSet holds which directions are currently held down.
type DirectionSet [directionCount]bool

// Has reports whether d is held.
func (s DirectionSet) Has(d Direction) bool {
	if d < 0 || d >= directionCount {
		return false
	}
	return s[d]
}

// With returns a copy of the set with d held.
func (s DirectionSet) With(d Direction) DirectionSet {
	if d >= 0 && d < directionCount {
		s[d] = true
	}
	return s
}

// HeldDirections builds a set from the given directions.
func HeldDirections(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions counts how many times each action was triggered this frame.
	// Every queued fire press spawns its own projectile.
	Actions map[Action]int

	// Held is the snapshot of movement directions held during this frame.
	Held DirectionSet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one press of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions and held directions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Held = DirectionSet{}
}
