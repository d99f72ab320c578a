// Package random provides the injectable randomness used by card generation
package random

import (
	"fmt"
	"strings"
)

// Source draws uniform integers and weighted coin flips
type Source interface {
	// Intn returns a uniform int in [0, n); n <= 0 yields 0
	Intn(n int) int

	// Chance returns true with probability p
	Chance(p float64) bool
}

// Policy controls the upper bound of policy-governed picks
type Policy int

const (
	// PolicyExcludeLast never selects the final candidate of a pool (draws from [0, n-1))
	PolicyExcludeLast Policy = iota

	// PolicyFullRange draws from [0, n)
	PolicyFullRange
)

// String returns the config name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyFullRange:
		return "full"
	default:
		return "exclude-last"
	}
}

// ParsePolicy resolves a config name into a Policy
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exclude-last", "exclude_last":
		return PolicyExcludeLast, nil
	case "full", "full-range", "full_range":
		return PolicyFullRange, nil
	default:
		return PolicyExcludeLast, fmt.Errorf("unknown random policy %q", name)
	}
}

// Picker applies a Policy on top of a Source
type Picker struct {
	source Source
	policy Policy
}

// NewPicker creates a picker for a single request
func NewPicker(source Source, policy Policy) *Picker {
	return &Picker{source: source, policy: policy}
}

// Policy returns the picker's policy
func (p *Picker) Policy() Policy {
	return p.policy
}

// Index picks a candidate index out of n under the picker's policy
func (p *Picker) Index(n int) int {
	if n <= 1 {
		return 0
	}
	if p.policy == PolicyExcludeLast {
		return p.source.Intn(n - 1)
	}
	return p.source.Intn(n)
}

// Uniform picks from [0, n) regardless of policy
func (p *Picker) Uniform(n int) int {
	if n <= 0 {
		return 0
	}
	return p.source.Intn(n)
}

// Between picks from [lo, hi) under the picker's policy, treating hi as the pool size bound
func (p *Picker) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.Index(hi-lo)
}

// Chance returns true with probability prob
func (p *Picker) Chance(prob float64) bool {
	return p.source.Chance(prob)
}
