package analyzer_test

import (
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name    string
		resume  domain.SkillSet
		job     domain.SkillSet
		matched []domain.Skill
		missing []domain.Skill
		score   float64
	}{
		{
			name:    "partial match",
			resume:  domain.NewSkillSet("python", "sql", "communication"),
			job:     domain.NewSkillSet("python", "machine learning", "sql"),
			matched: []domain.Skill{"python", "sql"},
			missing: []domain.Skill{"machine learning"},
			score:   66.67,
		},
		{
			name:    "job subset of resume",
			resume:  domain.NewSkillSet("go", "sql", "docker"),
			job:     domain.NewSkillSet("sql", "docker"),
			matched: []domain.Skill{"docker", "sql"},
			missing: []domain.Skill{},
			score:   100,
		},
		{
			name:    "empty job",
			resume:  domain.NewSkillSet("python"),
			job:     domain.NewSkillSet(),
			matched: []domain.Skill{},
			missing: []domain.Skill{},
			score:   0,
		},
		{
			name:    "empty resume",
			resume:  domain.NewSkillSet(),
			job:     domain.NewSkillSet("a", "b", "c"),
			matched: []domain.Skill{},
			missing: []domain.Skill{"a", "b", "c"},
			score:   0,
		},
		{
			name:    "one of three rounds down",
			resume:  domain.NewSkillSet("a"),
			job:     domain.NewSkillSet("a", "b", "c"),
			matched: []domain.Skill{"a"},
			missing: []domain.Skill{"b", "c"},
			score:   33.33,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := analyzer.Compare(tc.resume, tc.job)
			require.Equal(t, tc.matched, c.Matched.Sorted())
			require.Equal(t, tc.missing, c.Missing.Sorted())
			require.InDelta(t, tc.score, c.Score, 1e-9)

			for s := range c.Matched {
				require.False(t, c.Missing.Has(s), "%q both matched and missing", s)
			}
			require.Equal(t, tc.job.Len(), c.Matched.Len()+c.Missing.Len())
		})
	}
}
