package random

import (
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Factory hands out a fresh Source per request so requests never share generator state
type Factory interface {
	NewSource() Source
}

// DiceFactory builds dice-backed sources
type DiceFactory struct {
	Roller dice.Roller
}

// NewSource wraps the configured roller
func (f *DiceFactory) NewSource() Source {
	return NewDiceSource(f.Roller)
}

// SeededFactory builds reproducible sources: the nth request gets seed base+n
type SeededFactory struct {
	base    uint64
	counter atomic.Uint64
}

// NewSeededFactory creates a factory rooted at seed
func NewSeededFactory(seed uint64) *SeededFactory {
	return &SeededFactory{base: seed}
}

// NewSource returns the next seeded source
func (f *SeededFactory) NewSource() Source {
	n := f.counter.Add(1) - 1
	return NewSeeded(f.base + n)
}

// FixedFactory always returns the same Source, for tests
type FixedFactory struct {
	Source Source
}

// NewSource returns the fixed source
func (f *FixedFactory) NewSource() Source {
	return f.Source
}
