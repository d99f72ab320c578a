package cards

import (
	"fmt"
	"strings"
)

const (
	// AbilityPlaceholderName is set before a name has been resolved
	AbilityPlaceholderName = "New Ability"

	// AbilityFallbackName is used when no name could be resolved
	AbilityFallbackName = "Unnamed Ability"

	// MinAbilityCost and MaxAbilityCost bound a single ability's cost
	MinAbilityCost = 1
	MaxAbilityCost = 4
)

// Ability is a single attack or move printed on a card
type Ability struct {
	Name    string
	Element Element
	Cost    int
	Mixed   bool
}

// Power returns the printed damage: cost*10 plus an elemental bonus
func (a Ability) Power() int {
	base := a.Cost * 10
	if a.Element.IsNeutral() {
		return base
	}
	if a.Mixed || a.Cost == 1 {
		return base + 10
	}
	return base + 20
}

// ElementalCost returns how many pips are paid in the ability's own element
func (a Ability) ElementalCost() int {
	switch {
	case a.Element.IsNeutral():
		return 0
	case a.Mixed:
		return a.Cost / 2
	default:
		return a.Cost
	}
}

// Pips returns one element per cost pip, elemental pips first then Neutral
func (a Ability) Pips() []Element {
	pips := make([]Element, 0, a.Cost)
	elemental := a.ElementalCost()
	for i := 0; i < elemental; i++ {
		pips = append(pips, a.Element)
	}
	for i := elemental; i < a.Cost; i++ {
		pips = append(pips, ElementNeutral)
	}
	return pips
}

// Key returns the lookup key for pre-authored names, e.g. "fire_3_pure_standard"
func (a Ability) Key() string {
	kind := "pure"
	if a.Mixed {
		kind = "mixed"
	}
	return strings.ToLower(fmt.Sprintf("%s_%d_%s_standard", a.Element, a.Cost, kind))
}
