package cards

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// GenerateSeriesInput requests an evolution series
type GenerateSeriesInput struct {
	Element cards.Element

	// Count of members; zero or less picks one or two at random
	Count int

	// Concept optionally names the creature archetype, e.g. "dragon"
	Concept string
}

// GenerateSeriesOutput contains the series in evolution order
type GenerateSeriesOutput struct {
	Creatures []*cards.Creature
}

// GenerateCardInput requests a single card
type GenerateCardInput struct {
	Element cards.Element
	Rarity  cards.Rarity

	// Stage is the series index, nil for a standalone card
	Stage *int

	// Inherited style from the first member of a series
	Inherited *cards.Style

	Concept string
}

// GenerateCardOutput contains the generated card
type GenerateCardOutput struct {
	Creature *cards.Creature
}
