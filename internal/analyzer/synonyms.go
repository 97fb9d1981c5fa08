package analyzer

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// SynonymMapper rewrites alternate phrasings ("k8s", "ml") to their canonical
// skill name. It expects normalized text.
type SynonymMapper struct {
	table map[string]string
	re    *regexp.Regexp
}

// NewSynonymMapper compiles table (alternate -> canonical) into a single
// whole-phrase alternation. Longer alternates are tried first; alternates of
// equal length are ordered lexically.
func NewSynonymMapper(table map[string]string) *SynonymMapper {
	m := &SynonymMapper{table: table}
	if len(table) == 0 {
		return m
	}

	alts := make([]string, 0, len(table))
	for alt := range table {
		alts = append(alts, alt)
	}
	slices.SortFunc(alts, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})
	for i, alt := range alts {
		alts[i] = regexp.QuoteMeta(alt)
	}
	m.re = regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`)

	return m
}

// Apply replaces every whole-phrase alternate in text in one left-to-right
// pass. Replacements are not scanned again.
func (m *SynonymMapper) Apply(text string) string {
	if m.re == nil || text == "" {
		return text
	}

	return m.re.ReplaceAllStringFunc(text, func(alt string) string {
		return m.table[alt]
	})
}
