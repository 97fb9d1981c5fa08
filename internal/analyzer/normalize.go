package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var separators = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases text, folds accented Latin letters to their base
// letter and turns every run of other characters into a single space.
// The result has no leading or trailing space. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// transform.Chain keeps internal buffers, so one chain per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, text)
	if err != nil {
		folded = text
	}

	return strings.TrimSpace(separators.ReplaceAllString(strings.ToLower(folded), " "))
}
