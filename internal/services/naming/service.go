// Package naming proposes ability names, creature names and flavor text
// for generated cards.
package naming

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
)

//go:generate mockgen -destination=mock/mock_service.go -package=namingmock github.com/KirkDiggler/card-forge/internal/services/naming Service

// Service proposes text for a card. A false second return means no usable
// proposal and the caller applies its own fallback.
type Service interface {
	// IsEnabled reports whether generated names and descriptions are available
	IsEnabled() bool

	// ProposeAbilityName resolves a name for ability; picker drives pool selection
	ProposeAbilityName(ctx context.Context, picker *random.Picker, ability cards.Ability) (string, bool)

	// ProposeCreatureName names a creature from its visual description
	ProposeCreatureName(ctx context.Context, creature *cards.Creature) (string, bool)

	// ProposeDescription writes a one sentence flavor text
	ProposeDescription(ctx context.Context, creature *cards.Creature, visual string) (string, bool)
}

// Disabled proposes nothing
type Disabled struct{}

// IsEnabled is always false
func (Disabled) IsEnabled() bool { return false }

// ProposeAbilityName never proposes
func (Disabled) ProposeAbilityName(context.Context, *random.Picker, cards.Ability) (string, bool) {
	return "", false
}

// ProposeCreatureName never proposes
func (Disabled) ProposeCreatureName(context.Context, *cards.Creature) (string, bool) {
	return "", false
}

// ProposeDescription never proposes
func (Disabled) ProposeDescription(context.Context, *cards.Creature, string) (string, bool) {
	return "", false
}

var _ Service = Disabled{}
