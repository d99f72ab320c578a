// Package ability turns an ability-points budget into priced, elemented abilities
package ability

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
)

const (
	// NeutralChance is the chance a secondary ability is forced to Neutral
	NeutralChance = 0.5

	// MixedChance is the chance an eligible ability splits its cost with Neutral
	MixedChance = 0.5

	// SplitChance is the chance a non-common 3-point budget becomes [2,1] instead of [3]
	SplitChance = 0.5

	// MaxPoints is the most ability points two abilities can carry
	MaxPoints = 2 * cards.MaxAbilityCost
)

// Clamp caps an ability-points budget at MaxPoints and returns the excess
func Clamp(points int) (kept, overflow int) {
	if points <= MaxPoints {
		return points, 0
	}
	return MaxPoints, points - MaxPoints
}

// Costs decomposes an ability-points budget into at most two ability costs summing to budget.
// Budgets above MaxPoints must be clamped first or the second cost exceeds MaxAbilityCost.
func Costs(picker *random.Picker, budget, rarityOrdinal int) []int {
	switch {
	case budget >= 6:
		return []int{cards.MaxAbilityCost, budget - cards.MaxAbilityCost}
	case budget >= 4:
		pivot := picker.Between(3, 5)
		if pivot == cards.MaxAbilityCost {
			if budget == cards.MaxAbilityCost {
				return []int{cards.MaxAbilityCost}
			}
			return []int{cards.MaxAbilityCost, budget - cards.MaxAbilityCost}
		}
		return []int{pivot, budget - pivot}
	case budget == 3:
		if rarityOrdinal < 1 {
			return []int{2, 1}
		}
		if picker.Chance(SplitChance) {
			return []int{3}
		}
		return []int{2, 1}
	default:
		return []int{budget}
	}
}

// Synthesize builds one unnamed ability per cost.
// The first ability always carries the card element; later ones may fall back to Neutral.
func Synthesize(picker *random.Picker, element cards.Element, costs []int) []cards.Ability {
	abilities := make([]cards.Ability, 0, len(costs))
	for i, cost := range costs {
		abilityElement := element
		if i > 0 && picker.Chance(NeutralChance) {
			abilityElement = cards.ElementNeutral
		}

		mixed := !abilityElement.IsNeutral() && cost > 1 && picker.Chance(MixedChance)

		abilities = append(abilities, cards.Ability{
			Name:    cards.AbilityPlaceholderName,
			Element: abilityElement,
			Cost:    cost,
			Mixed:   mixed,
		})
	}
	return abilities
}
