package renderer

import (
	"image"
	"strings"
)

// Card geometry in template pixels
const (
	ArtworkWidth   = 390
	ArtworkCenterY = 210

	HeaderFontSize = 28
	NameX          = 48
	HeaderY        = 64
	HPOffsetX      = 156

	AbilityWidth         = 370
	AbilityHeight        = 72
	AbilityGap           = 12
	AbilityCenterY       = 450
	AbilityNameX         = AbilityWidth/2 - 70
	AbilityNameY         = AbilityHeight/2 + 10
	AbilityNameFontSize  = 24
	AbilityPowerX        = AbilityWidth - 45
	AbilityPowerY        = AbilityHeight/2 + 12
	AbilityPowerFontSize = 32
	RuleInset            = 36

	CostBoxWidth = 76
	PipSize      = 30
	PipGap       = 4

	StatusSize  = 20
	StatusY     = 568
	StatusInset = 82

	FlavorX        = 58
	FlavorY        = 580
	FlavorFontSize = 12

	RarityOffsetX = 74
	RarityY       = 634

	flavorWrapAt    = 85
	flavorBreakFrom = 75
)

// ArtworkPlacement scales artwork to the artwork width and centres it
// horizontally on the template, vertically on ArtworkCenterY
func ArtworkPlacement(templateWidth, artWidth, artHeight int) image.Rectangle {
	if artWidth <= 0 || artHeight <= 0 {
		return image.Rectangle{}
	}

	scale := float64(ArtworkWidth) / float64(artWidth)
	w := int(float64(artWidth) * scale)
	h := int(float64(artHeight) * scale)

	x := (templateWidth - w) / 2
	y := ArtworkCenterY - h/2
	return image.Rect(x, y, x+w, y+h)
}

// AbilityOrigins returns the top-left corner of each ability panel in draw
// order. Panels are drawn last ability first.
func AbilityOrigins(templateWidth, count int) []image.Point {
	x := (templateWidth - AbilityWidth) / 2

	originY := 0
	switch count {
	case 1:
		originY = AbilityCenterY - AbilityHeight/2
	case 2:
		originY = AbilityCenterY - AbilityHeight - AbilityGap/2
	}

	origins := make([]image.Point, count)
	for i := range origins {
		origins[i] = image.Pt(x, originY+i*(AbilityHeight+AbilityGap))
	}
	return origins
}

// RuleLineY is the y of the separator between two ability panels
func RuleLineY(templateWidth, count int) (int, bool) {
	if count < 2 {
		return 0, false
	}
	return AbilityOrigins(templateWidth, count)[0].Y + AbilityHeight, true
}

// CostIconAnchors returns pip centres inside the cost box: one centred,
// two side by side, three as a triangle, four as a 2x2 grid
func CostIconAnchors(n int) []image.Point {
	cx := CostBoxWidth / 2
	cy := AbilityHeight / 2
	d := (PipSize + PipGap) / 2

	switch n {
	case 1:
		return []image.Point{{cx, cy}}
	case 2:
		return []image.Point{{cx - d, cy}, {cx + d, cy}}
	case 3:
		return []image.Point{{cx - d, cy - d}, {cx + d, cy - d}, {cx, cy + d}}
	case 4:
		return []image.Point{{cx - d, cy - d}, {cx + d, cy - d}, {cx - d, cy + d}, {cx + d, cy + d}}
	default:
		return nil
	}
}

// WrapFlavorText splits text into printed lines: one per sentence, with long
// sentences broken after their last comma or at a space past column 75
func WrapFlavorText(text string) []string {
	if text == "" {
		return nil
	}

	sentences := strings.Split(text, ".")
	for len(sentences) > 0 && sentences[len(sentences)-1] == "" {
		sentences = sentences[:len(sentences)-1]
	}

	var lines []string
	for _, sentence := range sentences {
		lines = append(lines, wrapSentence(sentence)...)
	}
	return lines
}

func wrapSentence(sentence string) []string {
	runes := []rune(sentence)

	if len(runes) > flavorWrapAt && strings.Contains(sentence, ",") {
		comma := lastIndexRune(runes, ',')
		return []string{string(runes[:comma+1]), string(runes[comma+1:])}
	}

	if len(runes) >= flavorWrapAt {
		for i := flavorBreakFrom; i < len(runes); i++ {
			if runes[i] == ' ' {
				return []string{string(runes[:i+1]), string(runes[i:])}
			}
		}
	}

	return []string{sentence}
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
