package random

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// chanceResolution is the die size used to turn a roll into a probability
const chanceResolution = 1_000_000

type diceSource struct {
	roller dice.Roller
}

// NewDiceSource adapts an rpg-toolkit roller into a Source
func NewDiceSource(roller dice.Roller) Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &diceSource{roller: roller}
}

// Intn rolls a d(n) and shifts it to zero-based
func (s *diceSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}

	roll, err := s.roller.Roll(n)
	if err != nil {
		slog.Warn("Dice roll failed, using lowest face", "size", n, "error", err)
		return 0
	}
	return roll - 1
}

// Chance rolls a fine-grained die and compares it to p
func (s *diceSource) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	roll, err := s.roller.Roll(chanceResolution)
	if err != nil {
		slog.Warn("Dice roll failed, treating chance as a miss", "probability", p, "error", err)
		return false
	}
	return float64(roll-1) < p*chanceResolution
}
