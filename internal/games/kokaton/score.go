package kokaton

// Score counts destroyed hazards. It can only go up.
type Score struct {
	value int
}

// Increment adds one point.
func (s *Score) Increment() {
	s.value++
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}
