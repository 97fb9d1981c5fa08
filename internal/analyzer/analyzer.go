package analyzer

import (
	"context"
	"errors"
	"fmt"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/document"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/logger"
	"skillmatch/pkg/metrics"
	"skillmatch/pkg/serrors"
	"skillmatch/pkg/similarity"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultThreshold is the minimum fuzzy similarity for a skill that is not
	// present verbatim to count as detected.
	DefaultThreshold = 75

	instrumentationName = "skillmatch/internal/analyzer"
)

// Options configure the analyzer.
type Options struct {
	// Threshold is the fuzzy similarity cut-off in [1, 100].
	Threshold int
}

// NewOptions returns the options the service runs with.
func NewOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

type analyzer struct {
	extractor document.Extractor
	synonyms  *SynonymMapper
	skills    *SkillExtractor
	threshold int

	tracer      trace.Tracer
	instruments *metrics.Instruments
}

var _ Analyzer = (*analyzer)(nil)

// New builds an Analyzer over cat. Synonym and skill matchers are compiled
// once here and shared read-only by all analyses.
func New(extractor document.Extractor, scorer similarity.Scorer, cat *catalog.Catalog, opts Options) (Analyzer, error) {
	if opts.Threshold < 1 || opts.Threshold > 100 {
		return nil, fmt.Errorf("threshold %d out of range [1, 100]", opts.Threshold)
	}
	if cat == nil {
		return nil, errors.New("catalog is required")
	}

	instruments, err := metrics.NewInstruments(otel.Meter(instrumentationName))
	if err != nil {
		return nil, fmt.Errorf("could not create analyzer instruments: %w", err)
	}

	return &analyzer{
		extractor:   extractor,
		synonyms:    NewSynonymMapper(cat.Synonyms()),
		skills:      NewSkillExtractor(cat.Skills(), scorer, opts.Threshold),
		threshold:   opts.Threshold,
		tracer:      otel.Tracer(instrumentationName),
		instruments: instruments,
	}, nil
}

func (a *analyzer) Analyze(ctx context.Context, in Input) (*domain.Analysis, error) {
	ctx, span := a.tracer.Start(ctx, "analyzer.Analyze", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	start := time.Now()

	if strings.TrimSpace(in.JobDescription) == "" {
		return a.fail(ctx, span, start, serrors.KindOnly(serrors.ErrMissingJobDescription))
	}
	if a.extractor == nil {
		return a.fail(ctx, span, start, serrors.With(serrors.ErrInternal, "no document extractor configured"))
	}

	text := a.extractor.Text(ctx, in.Filename, in.Document)
	if strings.TrimSpace(text) == "" {
		return a.fail(ctx, span, start, serrors.With(serrors.ErrUnreadableDocument, "no text in %q", in.Filename))
	}

	return a.succeed(ctx, span, start, a.analyze(text, in.JobDescription))
}

func (a *analyzer) AnalyzeText(ctx context.Context, resumeText, jobDescription string) (*domain.Analysis, error) {
	ctx, span := a.tracer.Start(ctx, "analyzer.AnalyzeText", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	start := time.Now()

	if strings.TrimSpace(jobDescription) == "" {
		return a.fail(ctx, span, start, serrors.KindOnly(serrors.ErrMissingJobDescription))
	}
	if strings.TrimSpace(resumeText) == "" {
		return a.fail(ctx, span, start, serrors.With(serrors.ErrUnreadableDocument, "résumé text is empty"))
	}

	return a.succeed(ctx, span, start, a.analyze(resumeText, jobDescription))
}

// analyze runs the pipeline on two non-blank texts.
func (a *analyzer) analyze(resumeText, jobDescription string) *domain.Analysis {
	resumeNorm := Normalize(resumeText)
	jobNorm := Normalize(document.StripMarkup(jobDescription))

	resumeSkills := a.skills.Extract(a.synonyms.Apply(resumeNorm))
	jobSkills := a.skills.Extract(a.synonyms.Apply(jobNorm))

	fallback := false
	if jobSkills.Len() == 0 {
		// substring scan of the text before synonym mapping
		jobSkills = a.skills.Contains(jobNorm)
		fallback = true
	}

	c := Compare(resumeSkills, jobSkills)

	return &domain.Analysis{
		ID:              domain.AnalysisID(uuid.New()),
		Score:           c.Score,
		Matched:         c.Matched.Sorted(),
		Missing:         c.Missing.Sorted(),
		ResumeSkills:    resumeSkills.Sorted(),
		JobSkills:       jobSkills.Sorted(),
		JobFallbackUsed: fallback,
		Threshold:       a.threshold,
	}
}

func (a *analyzer) succeed(ctx context.Context, span trace.Span, start time.Time, res *domain.Analysis) (*domain.Analysis, error) {
	span.SetAttributes(
		attribute.String("skillmatch.analysis_id", res.ID.String()),
		attribute.Int("skillmatch.resume_skills", len(res.ResumeSkills)),
		attribute.Int("skillmatch.job_skills", len(res.JobSkills)),
		attribute.Float64("skillmatch.score", res.Score),
	)
	a.record(ctx, start, metrics.OutcomeOK)
	a.instruments.Score.Record(ctx, res.Score)

	logger.Debug(ctx, "analysis completed",
		zap.Stringer("analysis_id", res.ID),
		zap.Int("resume_skills", len(res.ResumeSkills)),
		zap.Int("job_skills", len(res.JobSkills)),
		zap.Int("matched", len(res.Matched)),
		zap.Bool("job_fallback", res.JobFallbackUsed),
		zap.Float64("score", res.Score),
	)

	return res, nil
}

func (a *analyzer) fail(ctx context.Context, span trace.Span, start time.Time, err error) (*domain.Analysis, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	a.record(ctx, start, outcome(err))

	logger.Debug(ctx, "analysis rejected", zap.Error(err))

	return nil, err
}

func (a *analyzer) record(ctx context.Context, start time.Time, result string) {
	attrs := metric.WithAttributes(attribute.String(metrics.OutcomeAttr, result))
	a.instruments.Analyses.Add(ctx, 1, attrs)
	a.instruments.Duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func outcome(err error) string {
	switch serrors.KindOf(err) {
	case serrors.ErrUnreadableDocument:
		return metrics.OutcomeUnreadable
	case serrors.ErrMissingJobDescription:
		return metrics.OutcomeMissingJob
	default:
		return metrics.OutcomeInternalFailed
	}
}
