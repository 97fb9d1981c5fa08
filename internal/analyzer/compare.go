package analyzer

import (
	"math"
	"skillmatch/pkg/domain"
)

// Comparison is the outcome of comparing résumé skills with job skills.
type Comparison struct {
	Matched domain.SkillSet
	Missing domain.SkillSet
	// Score is |Matched| / |job| * 100 rounded to two decimals, 0 for an empty job set.
	Score float64
}

// Compare intersects resume with job.
func Compare(resume, job domain.SkillSet) Comparison {
	c := Comparison{
		Matched: job.Intersect(resume),
		Missing: job.Difference(resume),
	}
	if job.Len() > 0 {
		c.Score = round2(float64(c.Matched.Len()) / float64(job.Len()) * 100)
	}

	return c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
