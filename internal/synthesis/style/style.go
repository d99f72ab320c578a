// Package style picks (or inherits) the visual style behind a card's artwork
package style

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/contentpool"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
)

// finalStage is the series index of a fully evolved card
const finalStage = 2

// Input describes the card a style is being built for
type Input struct {
	// Inherited is the style of the first member of the series, nil for a fresh style
	Inherited *cards.Style
	Element   cards.Element
	Rarity    cards.Rarity

	// Stage is the series index, nil for a standalone card
	Stage *int

	// Subject is an optional free-text archetype override
	Subject string
}

// Config holds the dependencies for the style synthesizer
type Config struct {
	Pool *contentpool.Pool
}

// Synthesizer builds card styles from the content pool
type Synthesizer struct {
	pool *contentpool.Pool
}

// NewSynthesizer creates a synthesizer; a nil config or pool uses the default registry
func NewSynthesizer(cfg *Config) *Synthesizer {
	pool := contentpool.Default()
	if cfg != nil && cfg.Pool != nil {
		pool = cfg.Pool
	}
	return &Synthesizer{pool: pool}
}

// Synthesize returns a new style. Subject, detail and environment are copied from
// input.Inherited when present; adjectives, ambience and suffix are always recomputed.
func (s *Synthesizer) Synthesize(picker *random.Picker, input *Input) *cards.Style {
	out := &cards.Style{}

	if input.Inherited != nil {
		out.Subject = input.Inherited.Subject
		out.Detail = input.Inherited.Detail
		out.DetailAdjective = input.Inherited.DetailAdjective
		out.Environment = input.Inherited.Environment
	} else {
		archetype := s.resolveArchetype(picker, input.Element, input.Subject)
		out.Subject = archetype.Name

		if len(archetype.Details) > 1 {
			detail := archetype.Details[picker.Index(len(archetype.Details))]
			adjective := pick(picker, s.pool.DetailAdjectives(input.Element))
			out.Detail = detail.Phrase(adjective)
			out.DetailAdjective = adjective
		}

		out.Environment = pick(picker, s.pool.Environments(input.Element))
	}

	rarityAdjective := pick(picker, s.pool.RarityAdjectives(input.Rarity))
	stageAdjective := pick(picker, s.pool.StageAdjectives(input.Stage))

	sizePrefix := rarityAdjective
	if input.Stage != nil {
		sizePrefix = stageAdjective
		if input.Rarity.Ordinal() >= 2 {
			sizePrefix += " " + rarityAdjective
		}
	}

	out.SubjectAdjectives = []string{sizePrefix, fmt.Sprintf("%s-type", input.Element.Slug())}
	out.Ambience = s.ambience(picker, input)
	out.Suffix = fmt.Sprintf("%s %s", s.pool.StagePhrase(input.Stage), contentpool.StyleSuffix)

	slog.Debug("Style synthesized",
		"subject", out.Subject,
		"inherited", input.Inherited != nil,
		"environment", out.Environment,
		"ambience", out.Ambience,
	)

	return out
}

// resolveArchetype matches an override exactly, or picks from the element's archetypes
func (s *Synthesizer) resolveArchetype(picker *random.Picker, element cards.Element, subject string) cards.Archetype {
	if strings.TrimSpace(subject) != "" {
		if archetype, ok := s.pool.FindArchetype(subject); ok {
			return archetype
		}
		// free text that isn't in the registry is used verbatim, without details
		return cards.Archetype{Name: subject}
	}

	candidates := s.pool.ArchetypesFor(element)
	if len(candidates) == 0 {
		return s.pool.Archetypes()[0]
	}
	return candidates[picker.Uniform(len(candidates))]
}

// ambience returns the reserved last entry for a fully evolved rare card,
// otherwise a pick among the rest
func (s *Synthesizer) ambience(picker *random.Picker, input *Input) string {
	options := s.pool.Ambiences(input.Element)
	if len(options) == 0 {
		return ""
	}

	if input.Rarity.Ordinal() >= 2 && input.Stage != nil && *input.Stage == finalStage {
		return options[len(options)-1]
	}

	if len(options) == 1 {
		return options[0]
	}
	return pick(picker, options[:len(options)-1])
}

func pick(picker *random.Picker, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[picker.Index(len(options))]
}
