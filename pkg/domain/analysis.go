package domain

import "github.com/google/uuid"

// AnalysisID identifies a single analysis run. It is only used to correlate
// log lines and responses; analyses are never stored.
type AnalysisID uuid.UUID

// String returns the canonical textual form of the ID.
func (id AnalysisID) String() string { return uuid.UUID(id).String() }

// Analysis is the outcome of comparing one résumé against one job description.
type Analysis struct {
	// ID correlates the response with server logs.
	ID AnalysisID
	// Score is the percentage of job skills found in the résumé, rounded to two decimals.
	Score float64
	// Matched lists job skills also found in the résumé, sorted.
	Matched []Skill
	// Missing lists job skills absent from the résumé, sorted.
	Missing []Skill
	// ResumeSkills lists every skill detected in the résumé, sorted.
	ResumeSkills []Skill
	// JobSkills lists every skill detected in the job description, sorted.
	JobSkills []Skill
	// JobFallbackUsed is set when the regular extractor found no job skill
	// and JobSkills comes from the looser substring scan.
	JobFallbackUsed bool
	// Threshold is the fuzzy similarity threshold the analysis ran with.
	Threshold int
}
