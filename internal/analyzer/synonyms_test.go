package analyzer_test

import (
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/catalog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynonymMapper_Apply(t *testing.T) {
	m := analyzer.NewSynonymMapper(catalog.Default().Synonyms())

	cases := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"ai and ml engineer needed", "machine learning and machine learning engineer needed"},
		{"we deploy on k8s with postgres", "we deploy on kubernetes with postgresql"},
		{"improve maintainability and maintain services", "improve maintainability and maintain services"},
		{"html and xml", "html and xml"},
		{"experience with amazon web services", "experience with aws"},
		{"reactjs or react js", "react or react"},
		{"nlp", "natural language processing"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.out, m.Apply(tc.in))
		})
	}
}

func TestSynonymMapper_LongestFirstNoCascade(t *testing.T) {
	m := analyzer.NewSynonymMapper(map[string]string{
		"a":     "b c",
		"a b":   "x",
		"b c":   "y",
		"x":     "z",
		"q q q": "w",
	})

	// "a b" wins over "a"; the "x" it produces is not rewritten to "z".
	require.Equal(t, "x", m.Apply("a b"))
	// "a" becomes "b c", which is not rewritten to "y".
	require.Equal(t, "b c d", m.Apply("a d"))
	require.Equal(t, "w q", m.Apply("q q q q"))
}

func TestSynonymMapper_Empty(t *testing.T) {
	m := analyzer.NewSynonymMapper(nil)
	require.Equal(t, "ai and ml", m.Apply("ai and ml"))
}
