package cards

import "github.com/KirkDiggler/rpg-toolkit/core"

const (
	// EntityType identifies creature cards to the rpg-toolkit event bus
	EntityType = "creature_card"

	// CardPlaceholderName is set before naming runs
	CardPlaceholderName = "Untitled Card"

	// CardFallbackName is used when naming is enabled but produced nothing usable
	CardFallbackName = "Unnamed"
)

// Creature is a fully generated card, ready for artwork and rendering
// NOTE: This is a data-only struct; all rules live in the synthesizers
type Creature struct {
	ID      string
	Name    string
	HP      int
	Element Element
	Rarity  Rarity

	// Stage is the index within an evolution series, nil for a standalone card
	Stage *int

	Abilities []Ability
	Style     *Style

	ArtworkPrompt     string
	VisualDescription string
	FlavorText        string
}

// GetID returns the card ID for rpg-toolkit
func (c *Creature) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Creature) GetType() string {
	return EntityType
}

// AbilityNames lists ability names in synthesis order
func (c *Creature) AbilityNames() []string {
	names := make([]string, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		names = append(names, a.Name)
	}
	return names
}

// Compile-time check that Creature implements core.Entity
var _ core.Entity = (*Creature)(nil)
