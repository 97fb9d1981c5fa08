// Package analyzer compares the skills of a résumé with the skills asked for
// by a job description.
//
// Both texts go through the same pipeline: Normalize, SynonymMapper.Apply,
// SkillExtractor.Extract. The two resulting sets are compared with Compare.
package analyzer

import (
	"context"
	"skillmatch/pkg/domain"
)

// Input is one résumé upload together with the job description it is
// measured against.
type Input struct {
	// Document holds the raw bytes of the uploaded résumé.
	Document []byte
	// Filename is the declared name of the upload, used to refine format detection.
	Filename string
	// JobDescription is the pasted job posting, plain text or HTML.
	JobDescription string
}

//go:generate mockgen -package mockanalyzer -source=interface.go -destination=mock/mockanalyzer.go *
type Analyzer interface {
	// Analyze extracts the résumé text from in.Document and analyzes it.
	Analyze(ctx context.Context, in Input) (*domain.Analysis, error)
	// AnalyzeText analyzes résumé text that was already extracted.
	AnalyzeText(ctx context.Context, resumeText, jobDescription string) (*domain.Analysis, error)
}
