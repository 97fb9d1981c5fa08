package analyzer

import (
	"regexp"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/similarity"
	"strings"
)

type skillMatcher struct {
	skill domain.Skill
	re    *regexp.Regexp
}

// SkillExtractor finds catalog skills in normalized text.
type SkillExtractor struct {
	matchers  []skillMatcher
	scorer    similarity.Scorer
	threshold int
}

// NewSkillExtractor precompiles a whole-phrase matcher per skill. Skills not
// found verbatim are looked up with scorer and kept when the similarity is at
// least threshold. A nil scorer disables the fuzzy pass.
func NewSkillExtractor(skills []domain.Skill, scorer similarity.Scorer, threshold int) *SkillExtractor {
	e := &SkillExtractor{
		matchers:  make([]skillMatcher, 0, len(skills)),
		scorer:    scorer,
		threshold: threshold,
	}
	for _, s := range skills {
		e.matchers = append(e.matchers, skillMatcher{
			skill: s,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`),
		})
	}

	return e
}

// Extract returns the skills detected in text.
func (e *SkillExtractor) Extract(text string) domain.SkillSet {
	found := domain.NewSkillSet()
	if text == "" {
		return found
	}

	for _, m := range e.matchers {
		if m.re.MatchString(text) {
			found.Add(m.skill)

			continue
		}
		if e.scorer != nil && e.scorer.Similarity(m.skill, text) >= e.threshold {
			found.Add(m.skill)
		}
	}

	return found
}

// Contains returns every skill that occurs anywhere in text, inside other
// words included ("sql" in "mysql").
func (e *SkillExtractor) Contains(text string) domain.SkillSet {
	found := domain.NewSkillSet()
	if text == "" {
		return found
	}

	for _, m := range e.matchers {
		if strings.Contains(text, m.skill) {
			found.Add(m.skill)
		}
	}

	return found
}
