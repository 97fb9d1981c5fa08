package v1handler

import (
	"context"
	"io"
	"skillmatch/internal/analyzer"
	"skillmatch/internal/api/specs/v1specs"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/serrors"

	"github.com/google/uuid"
)

func DomainAnalysisToV1Specs(in *domain.Analysis) *v1specs.Analysis {
	return &v1specs.Analysis{
		ID:              uuid.UUID(in.ID),
		Score:           in.Score,
		Matched:         in.Matched,
		Missing:         in.Missing,
		ResumeSkills:    in.ResumeSkills,
		JobSkills:       in.JobSkills,
		JobFallbackUsed: in.JobFallbackUsed,
		Threshold:       in.Threshold,
	}
}

// CreateAnalysis analyzes an uploaded résumé file.
func (h Handler) CreateAnalysis(ctx context.Context, req *v1specs.CreateAnalysisReq) (*v1specs.Analysis, error) {
	data, err := io.ReadAll(req.Resume.File)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Could not read the uploaded résumé.")
	}

	res, err := h.deps.Analyzer.Analyze(ctx, analyzer.Input{
		Document:       data,
		Filename:       req.Resume.Name,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainAnalysisToV1Specs(res), nil
}

// CreateTextAnalysis analyzes résumé text that was extracted by the caller.
func (h Handler) CreateTextAnalysis(ctx context.Context, req *v1specs.TextAnalysisRequest) (*v1specs.Analysis, error) {
	res, err := h.deps.Analyzer.AnalyzeText(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainAnalysisToV1Specs(res), nil
}
