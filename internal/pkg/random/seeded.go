package random

import (
	"math/rand/v2"
)

type seededSource struct {
	rng *rand.Rand
}

// NewSeeded returns a deterministic Source; it must stay confined to one request
func NewSeeded(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

func (s *seededSource) Chance(p float64) bool {
	return s.rng.Float64() < p
}
