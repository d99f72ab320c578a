package cards

import (
	"strings"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
)

// RandomElement is the request value that picks any playable element
const RandomElement = "random"

// ResolveElement parses a requested element name, case-insensitively.
// Empty or "random" draws uniformly from cards.Playable.
func ResolveElement(name string, factory random.Factory) (cards.Element, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, RandomElement) {
		if factory == nil {
			return cards.ElementUnknown, errors.InvalidArgument("random factory is required for a random element")
		}
		playable := cards.Playable()
		picker := random.NewPicker(factory.NewSource(), random.PolicyFullRange)
		return playable[picker.Uniform(len(playable))], nil
	}

	element := cards.ParseElementFold(trimmed)
	if element == cards.ElementUnknown {
		return cards.ElementUnknown, errors.InvalidArgumentf("unknown element %q", name).
			WithMeta("element", name)
	}
	return element, nil
}
