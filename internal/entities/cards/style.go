package cards

import "strings"

// Style holds the visual choices behind a card's artwork prompt
type Style struct {
	Subject           string
	SubjectAdjectives []string
	Detail            string
	DetailAdjective   string
	Environment       string
	Ambience          string
	Suffix            string
}

// Clone returns a deep copy so inherited styles never share slices
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	clone := *s
	clone.SubjectAdjectives = append([]string(nil), s.SubjectAdjectives...)
	return &clone
}

// Relation words joining a subject and a detail
const (
	RelationWith    = "with"
	RelationWearing = "wearing"
	RelationHolding = "holding"
)

// Detail is a decorative feature that can be attached to an archetype
type Detail struct {
	Relation   string
	Noun       string
	Quantifier string
}

// Phrase renders "relation [quantifier] [adjective] noun", skipping blank parts
func (d Detail) Phrase(adjective string) string {
	parts := []string{d.Relation}
	if d.Quantifier != "" {
		parts = append(parts, d.Quantifier)
	}
	if adjective != "" {
		parts = append(parts, adjective)
	}
	parts = append(parts, d.Noun)
	return strings.Join(parts, " ")
}

// Archetype is a named creature template with its compatible details
type Archetype struct {
	Name    string
	Details []Detail
}
