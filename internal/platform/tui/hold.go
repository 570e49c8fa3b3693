package tui

import "github.com/vovakirdan/kokaton/internal/core"

// HoldTracker rebuilds held-key state from key presses.
// Terminals only report presses (and auto-repeats), so a direction counts as
// held for a fixed number of frames after its last press.
type HoldTracker struct {
	frames    int
	remaining [len(core.Directions)]int
}

// NewHoldTracker creates a tracker that holds each press for frames ticks.
func NewHoldTracker(frames int) *HoldTracker {
	return &HoldTracker{frames: max(frames, 1)}
}

// Press marks d as held and releases its opposite.
func (h *HoldTracker) Press(d core.Direction) {
	h.remaining[d] = h.frames
	h.remaining[opposite(d)] = 0
}

// Held returns the directions currently considered held.
func (h *HoldTracker) Held() core.DirectionSet {
	var set core.DirectionSet
	for _, d := range core.Directions {
		if h.remaining[d] > 0 {
			set = set.With(d)
		}
	}
	return set
}

// Advance ages every press by one frame.
func (h *HoldTracker) Advance() {
	for i := range h.remaining {
		if h.remaining[i] > 0 {
			h.remaining[i]--
		}
	}
}

// Release drops every held direction.
func (h *HoldTracker) Release() {
	h.remaining = [len(core.Directions)]int{}
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.DirUp:
		return core.DirDown
	case core.DirDown:
		return core.DirUp
	case core.DirLeft:
		return core.DirRight
	default:
		return core.DirLeft
	}
}
