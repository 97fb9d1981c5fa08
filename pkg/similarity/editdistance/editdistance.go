// Package editdistance provides a similarity.Scorer based on Levenshtein
// distance. Its PartialRatio slides the shorter string over every window of
// the same length in the longer one and keeps the best normalized score.
package editdistance

import (
	"skillmatch/pkg/similarity"

	"github.com/agnivade/levenshtein"
)

// PartialRatio scores the best alignment of the shorter input against any
// equally long window of the longer input. It is stateless and safe for
// concurrent use.
type PartialRatio struct{}

// Ensure PartialRatio implements similarity.Scorer.
var _ similarity.Scorer = PartialRatio{}

// New returns a PartialRatio scorer.
func New() PartialRatio { return PartialRatio{} }

// Ratio compares a and b as a whole: 100 minus the edit distance expressed as
// a percentage of the longer length, truncated toward zero. Two empty strings
// are identical.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)

	return 100 * (longest - d) / longest
}

// Similarity implements similarity.Scorer.
func (PartialRatio) Similarity(needle, haystack string) int {
	short, long := []rune(needle), []rune(haystack)
	if len(short) > len(long) {
		short, long = long, short
	}
	switch {
	case len(short) == 0 && len(long) == 0:
		return 100
	case len(short) == 0:
		return 0
	case len(short) == len(long):
		return Ratio(string(short), string(long))
	}

	s := string(short)
	best := 0
	for i := 0; i+len(short) <= len(long); i++ {
		score := Ratio(s, string(long[i:i+len(short)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}

	return best
}
