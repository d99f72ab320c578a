package random

import "sync"

// Sequence replays scripted draws, for tests that need exact control.
// Exhausted sequences return 0 and false.
type Sequence struct {
	mu    sync.Mutex
	ints  []int
	bools []bool
	calls []int
}

// NewSequence creates a Sequence from scripted Intn results and Chance results
func NewSequence(ints []int, bools []bool) *Sequence {
	return &Sequence{ints: ints, bools: bools}
}

// Intn returns the next scripted int, clamped into [0, n)
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, n)
	if n <= 0 || len(s.ints) == 0 {
		return 0
	}

	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// Chance returns the next scripted bool
func (s *Sequence) Chance(_ float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bools) == 0 {
		return false
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v
}

// Bounds returns the n passed to every Intn call so far
func (s *Sequence) Bounds() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.calls...)
}
