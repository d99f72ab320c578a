// Package contentpool holds the read-only registries that card generation draws from
package contentpool

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// Pool is an immutable view over the content registries.
// Every accessor returns a fresh slice so callers can never mutate shared state.
type Pool struct {
	archetypes          []cards.Archetype
	archetypesByName    map[string]cards.Archetype
	archetypesByElement map[cards.Element][]cards.Archetype
	details             []cards.Detail
	weapons             []cards.Detail
}

// defaultPool is assembled once at package init and never mutated
var defaultPool = newPool()

// Default returns the shared registry
func Default() *Pool {
	return defaultPool
}

func newPool() *Pool {
	byName := make(map[string]cards.Archetype, len(allArchetypes))
	for _, a := range allArchetypes {
		byName[a.Name] = a
	}

	return &Pool{
		archetypes:          allArchetypes,
		archetypesByName:    byName,
		archetypesByElement: archetypesByElement,
		details:             allDetails,
		weapons:             weapons,
	}
}

// Archetypes returns every named archetype in registry order
func (p *Pool) Archetypes() []cards.Archetype {
	return copyArchetypes(p.archetypes)
}

// ArchetypesFor returns the archetypes compatible with an element; empty for Unknown
func (p *Pool) ArchetypesFor(element cards.Element) []cards.Archetype {
	return copyArchetypes(p.archetypesByElement[element])
}

// FindArchetype matches a name exactly (case-sensitive)
func (p *Pool) FindArchetype(name string) (cards.Archetype, bool) {
	a, ok := p.archetypesByName[name]
	if !ok {
		return cards.Archetype{}, false
	}
	return copyArchetypes([]cards.Archetype{a})[0], true
}

// Details returns every decorative detail
func (p *Pool) Details() []cards.Detail {
	return append([]cards.Detail(nil), p.details...)
}

// Weapons returns the holdable weapons
func (p *Pool) Weapons() []cards.Detail {
	return append([]cards.Detail(nil), p.weapons...)
}

// DetailAdjectives returns the global adjectives followed by the element's own
func (p *Pool) DetailAdjectives(element cards.Element) []string {
	out := append([]string(nil), globalDetailAdjectives...)
	return append(out, detailAdjectives[element]...)
}

// RarityAdjectives returns the size adjectives for a rarity
func (p *Pool) RarityAdjectives(rarity cards.Rarity) []string {
	return append([]string(nil), rarityAdjectives[rarity]...)
}

// StageAdjectives returns the adjectives for a series stage.
// A nil stage yields [""]; an unrecognized stage yields [""] too.
func (p *Pool) StageAdjectives(stage *int) []string {
	if stage == nil {
		return []string{""}
	}
	adjectives, ok := stageAdjectives[*stage]
	if !ok {
		return []string{""}
	}
	return append([]string(nil), adjectives...)
}

// StagePhrase returns the drawing-style phrase for a series stage
func (p *Pool) StagePhrase(stage *int) string {
	if stage == nil {
		return standalonePhrase
	}
	return stagePhrases[*stage]
}

// Ambiences returns the element's ambience list; the last entry is reserved
func (p *Pool) Ambiences(element cards.Element) []string {
	return append([]string(nil), ambiences[element]...)
}

// Environments returns the element's environment nouns
func (p *Pool) Environments(element cards.Element) []string {
	return append([]string(nil), environments[element]...)
}

func copyArchetypes(in []cards.Archetype) []cards.Archetype {
	out := make([]cards.Archetype, len(in))
	for i, a := range in {
		out[i] = cards.Archetype{
			Name:    a.Name,
			Details: append([]cards.Detail(nil), a.Details...),
		}
	}
	return out
}
