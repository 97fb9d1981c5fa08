package analyzer_test

import (
	"context"
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/document"
	mockdocument "skillmatch/pkg/document/mock"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/serrors"
	"skillmatch/pkg/similarity/editdistance"
	mocksimilarity "skillmatch/pkg/similarity/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	resumeText = "Experienced in Python and SQL, strong communication skills."
	jobText    = "Looking for Python, Machine Learning, and SQL expertise."
)

func newTestAnalyzer(t *testing.T) (*mockdocument.MockExtractor, analyzer.Analyzer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ex := mockdocument.NewMockExtractor(ctrl)
	a, err := analyzer.New(ex, editdistance.New(), catalog.Default(), analyzer.NewOptions())
	require.NoError(t, err)

	return ex, a
}

func TestNew_InvalidOptions(t *testing.T) {
	for _, threshold := range []int{0, -1, 101} {
		_, err := analyzer.New(document.New(), editdistance.New(), catalog.Default(), analyzer.Options{Threshold: threshold})
		require.Error(t, err, "threshold %d", threshold)
	}

	_, err := analyzer.New(document.New(), editdistance.New(), nil, analyzer.NewOptions())
	require.Error(t, err)
}

func TestAnalyze_Scenario(t *testing.T) {
	ex, a := newTestAnalyzer(t)
	doc := []byte("%PDF-1.4 ...")
	ex.EXPECT().Text(gomock.Any(), "resume.pdf", doc).Return(resumeText)

	res, err := a.Analyze(context.Background(), analyzer.Input{
		Document:       doc,
		Filename:       "resume.pdf",
		JobDescription: jobText,
	})
	require.NoError(t, err)

	require.Equal(t, []domain.Skill{"python", "sql"}, res.Matched)
	require.Equal(t, []domain.Skill{"machine learning"}, res.Missing)
	require.Equal(t, []domain.Skill{"machine learning", "python", "sql"}, res.JobSkills)
	require.Subset(t, res.ResumeSkills, []domain.Skill{"communication", "python", "sql"})
	require.InDelta(t, 66.67, res.Score, 1e-9)
	require.False(t, res.JobFallbackUsed)
	require.Equal(t, analyzer.DefaultThreshold, res.Threshold)
	require.NotEmpty(t, res.ID.String())
}

func TestAnalyzeText_SynonymsCollapse(t *testing.T) {
	_, a := newTestAnalyzer(t)

	res, err := a.AnalyzeText(context.Background(), resumeText, "AI and ML engineer needed")
	require.NoError(t, err)
	require.Equal(t, []domain.Skill{"machine learning"}, res.JobSkills)
	require.Equal(t, []domain.Skill{"machine learning"}, res.Missing)
	require.Empty(t, res.Matched)
	require.Zero(t, res.Score)
}

// "Node.js" normalizes to "node js" and the js synonym then reads it as javascript.
func TestAnalyzeText_DottedNameSplits(t *testing.T) {
	_, a := newTestAnalyzer(t)

	res, err := a.AnalyzeText(context.Background(), "Built services in Node.js.", "Node.js developer")
	require.NoError(t, err)
	require.Contains(t, res.ResumeSkills, "javascript")
	require.Contains(t, res.JobSkills, "javascript")
	require.Contains(t, res.Matched, "javascript")
	require.False(t, res.JobFallbackUsed)
}

func TestAnalyzeText_FullMatch(t *testing.T) {
	_, a := newTestAnalyzer(t)

	res, err := a.AnalyzeText(context.Background(), "Python, SQL and Docker.", "We need Python and SQL.")
	require.NoError(t, err)
	require.InDelta(t, 100.0, res.Score, 1e-9)
	require.Empty(t, res.Missing)
	require.NotNil(t, res.Missing)
}

func TestAnalyzeText_HTMLJobDescription(t *testing.T) {
	_, a := newTestAnalyzer(t)

	res, err := a.AnalyzeText(context.Background(), resumeText,
		"<div><p>Looking for</p><ul><li>Python</li><li>Machine Learning</li><li>SQL</li></ul></div>")
	require.NoError(t, err)
	require.Equal(t, []domain.Skill{"machine learning", "python", "sql"}, res.JobSkills)
}

func TestAnalyze_MissingJobDescription(t *testing.T) {
	// no extractor call is expected
	_, a := newTestAnalyzer(t)

	for _, job := range []string{"", "   \n\t"} {
		res, err := a.Analyze(context.Background(), analyzer.Input{Document: []byte("x"), Filename: "cv.txt", JobDescription: job})
		require.ErrorIs(t, err, serrors.ErrMissingJobDescription)
		require.Nil(t, res)
	}
}

func TestAnalyze_UnreadableDocument(t *testing.T) {
	ex, a := newTestAnalyzer(t)
	ex.EXPECT().Text(gomock.Any(), "scan.pdf", gomock.Any()).Return("  \n ")

	res, err := a.Analyze(context.Background(), analyzer.Input{
		Document:       []byte("not a pdf"),
		Filename:       "scan.pdf",
		JobDescription: jobText,
	})
	require.ErrorIs(t, err, serrors.ErrUnreadableDocument)
	require.Nil(t, res)
}

func TestAnalyze_CorruptPDFEndToEnd(t *testing.T) {
	a, err := analyzer.New(document.New(), editdistance.New(), catalog.Default(), analyzer.NewOptions())
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), analyzer.Input{
		Document:       []byte("%PDF-1.4\ncorrupt"),
		Filename:       "resume.pdf",
		JobDescription: jobText,
	})
	require.ErrorIs(t, err, serrors.ErrUnreadableDocument)
}

func TestAnalyze_PlainTextEndToEnd(t *testing.T) {
	a, err := analyzer.New(document.New(), editdistance.New(), catalog.Default(), analyzer.NewOptions())
	require.NoError(t, err)

	res, err := a.Analyze(context.Background(), analyzer.Input{
		Document:       []byte(resumeText),
		Filename:       "resume.txt",
		JobDescription: jobText,
	})
	require.NoError(t, err)
	require.InDelta(t, 66.67, res.Score, 1e-9)
}

func TestAnalyzeText_EmptyResume(t *testing.T) {
	_, a := newTestAnalyzer(t)

	_, err := a.AnalyzeText(context.Background(), " ", jobText)
	require.ErrorIs(t, err, serrors.ErrUnreadableDocument)
}

func newNonFuzzyAnalyzer(t *testing.T) analyzer.Analyzer {
	t.Helper()

	ctrl := gomock.NewController(t)
	scorer := mocksimilarity.NewMockScorer(ctrl)
	scorer.EXPECT().Similarity(gomock.Any(), gomock.Any()).Return(0).AnyTimes()
	a, err := analyzer.New(document.New(), scorer, catalog.Default(), analyzer.NewOptions())
	require.NoError(t, err)

	return a
}

func TestAnalyzeText_SubstringFallback(t *testing.T) {
	a := newNonFuzzyAnalyzer(t)

	res, err := a.AnalyzeText(context.Background(), "I know SQL.", "MySQL shop")
	require.NoError(t, err)
	require.True(t, res.JobFallbackUsed)
	require.Equal(t, []domain.Skill{"sql"}, res.JobSkills)
	require.Equal(t, []domain.Skill{"sql"}, res.Matched)
	require.InDelta(t, 100.0, res.Score, 1e-9)
}

func TestAnalyzeText_NoJobSkills(t *testing.T) {
	a := newNonFuzzyAnalyzer(t)

	res, err := a.AnalyzeText(context.Background(), "I know SQL.", "We value punctuality.")
	require.NoError(t, err)
	require.True(t, res.JobFallbackUsed)
	require.Zero(t, res.Score)
	require.Empty(t, res.JobSkills)
	require.Empty(t, res.Matched)
	require.Empty(t, res.Missing)
	require.Equal(t, []domain.Skill{"sql"}, res.ResumeSkills)
}

func TestAnalyzeText_Concurrent(t *testing.T) {
	_, a := newTestAnalyzer(t)

	errs := make(chan error, 16)
	for range 16 {
		go func() {
			res, err := a.AnalyzeText(context.Background(), resumeText, jobText)
			if err == nil && res.Score != 66.67 {
				err = serrors.With(serrors.ErrInternal, "unexpected score %v", res.Score)
			}
			errs <- err
		}()
	}
	for range 16 {
		require.NoError(t, <-errs)
	}
}
