package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var listMarker = regexp.MustCompile(`^\s*\d+\.\s*`)

// CleanCreatureName reduces a model completion to a single capitalized word.
// Models often answer with a numbered list, e.g. "1. Fungus\n2. Mushroom",
// in which case only the first entry is kept.
func CleanCreatureName(raw string) string {
	name := strings.TrimSpace(raw)

	if nl := strings.Index(name, "\n"); nl >= 0 {
		start := 0
		if dot := strings.Index(name, "."); dot >= 0 && dot < nl {
			start = dot + 1
		}
		name = name[start:nl]
	} else {
		name = listMarker.ReplaceAllString(name, "")
	}

	name = strings.TrimSpace(stripPunctuation(name))
	return capitalize(strings.ToLower(name))
}

// TrimDescription keeps the first sentence so truncated completions still read complete
func TrimDescription(raw string) string {
	desc := strings.TrimSpace(raw)
	if dot := strings.Index(desc, "."); dot >= 0 {
		desc = desc[:dot+1]
	}
	return desc
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			return -1
		}
		return r
	}, s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
