// Package cards implements the creature card entities
package cards

import "strings"

// Element is the elemental affinity of a creature or ability
type Element int

// Elements in declaration order. Unknown is the sentinel for unrecognized names.
const (
	ElementNeutral Element = iota
	ElementFire
	ElementWater
	ElementGrass
	ElementElectric
	ElementPsychic
	ElementFighting
	ElementUnknown
)

var elementNames = map[Element]string{
	ElementNeutral:  "Neutral",
	ElementFire:     "Fire",
	ElementWater:    "Water",
	ElementGrass:    "Grass",
	ElementElectric: "Electric",
	ElementPsychic:  "Psychic",
	ElementFighting: "Fighting",
	ElementUnknown:  "Unknown",
}

// elementByName is built once from elementNames
var elementByName = func() map[string]Element {
	m := make(map[string]Element, len(elementNames))
	for e, name := range elementNames {
		m[name] = e
	}
	return m
}()

// weaknesses and resistances are directed lookups; a missing key means none
var (
	weaknesses = map[Element]Element{
		ElementFire:     ElementWater,
		ElementWater:    ElementElectric,
		ElementGrass:    ElementFire,
		ElementElectric: ElementFighting,
		ElementFighting: ElementPsychic,
		ElementNeutral:  ElementFighting,
	}
	resistances = map[Element]Element{
		ElementFire:    ElementGrass,
		ElementWater:   ElementFire,
		ElementGrass:   ElementElectric,
		ElementPsychic: ElementFighting,
	}
)

// String returns the display name, e.g. "Fire"
func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return elementNames[ElementUnknown]
}

// Slug returns the lower-cased name used for asset and lookup keys
func (e Element) Slug() string {
	return strings.ToLower(e.String())
}

// IsNeutral reports whether the element is Neutral
func (e Element) IsNeutral() bool {
	return e == ElementNeutral
}

// Weakness returns the element this one is weak to
func (e Element) Weakness() (Element, bool) {
	w, ok := weaknesses[e]
	return w, ok
}

// Resistance returns the element this one resists
func (e Element) Resistance() (Element, bool) {
	r, ok := resistances[e]
	return r, ok
}

// ParseElement resolves an exact display name, falling back to ElementUnknown
func ParseElement(name string) Element {
	if e, ok := elementByName[name]; ok {
		return e
	}
	return ElementUnknown
}

// ParseElementFold is ParseElement ignoring case and surrounding whitespace
func ParseElementFold(name string) Element {
	trimmed := strings.TrimSpace(name)
	for e, n := range elementNames {
		if strings.EqualFold(n, trimmed) {
			return e
		}
	}
	return ElementUnknown
}

// Playable returns every element except Unknown, in declaration order
func Playable() []Element {
	return []Element{
		ElementNeutral,
		ElementFire,
		ElementWater,
		ElementGrass,
		ElementElectric,
		ElementPsychic,
		ElementFighting,
	}
}
