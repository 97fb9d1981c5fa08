package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"skillmatch/internal/analyzer"
	mockanalyzer "skillmatch/internal/analyzer/mock"
	"skillmatch/internal/api/handler/v1handler"
	"skillmatch/internal/api/specs/v1specs"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/controller"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/serrors"
	"strings"
	"testing"

	"github.com/google/uuid"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*mockanalyzer.MockAnalyzer, *v1handler.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	a := mockanalyzer.NewMockAnalyzer(ctrl)

	return a, v1handler.New(v1handler.Deps{Analyzer: a, Catalog: catalog.Default()})
}

func sampleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID:           domain.AnalysisID(uuid.New()),
		Score:        66.67,
		Matched:      []domain.Skill{"python", "sql"},
		Missing:      []domain.Skill{"machine learning"},
		ResumeSkills: []domain.Skill{"communication", "python", "sql"},
		JobSkills:    []domain.Skill{"machine learning", "python", "sql"},
		Threshold:    75,
	}
}

func TestCreateAnalysis(t *testing.T) {
	a, h := newTestHandler(t)
	want := sampleAnalysis()
	a.EXPECT().Analyze(gomock.Any(), analyzer.Input{
		Document:       []byte("resume bytes"),
		Filename:       "cv.pdf",
		JobDescription: "Looking for Python",
	}).Return(want, nil)

	res, err := h.CreateAnalysis(context.Background(), &v1specs.CreateAnalysisReq{
		Resume:         ht.MultipartFile{Name: "cv.pdf", File: strings.NewReader("resume bytes")},
		JobDescription: "Looking for Python",
	})
	require.NoError(t, err)
	require.Equal(t, uuid.UUID(want.ID), res.ID)
	require.Equal(t, 66.67, res.Score)
	require.Equal(t, []string{"python", "sql"}, res.Matched)
	require.Equal(t, []string{"machine learning"}, res.Missing)
	require.Equal(t, want.ResumeSkills, res.ResumeSkills)
	require.Equal(t, want.JobSkills, res.JobSkills)
	require.False(t, res.JobFallbackUsed)
	require.Equal(t, 75, res.Threshold)
}

func TestCreateAnalysis_AnalyzerError(t *testing.T) {
	a, h := newTestHandler(t)
	a.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, serrors.KindOnly(serrors.ErrUnreadableDocument))

	res, err := h.CreateAnalysis(context.Background(), &v1specs.CreateAnalysisReq{
		Resume:         ht.MultipartFile{Name: "cv.pdf", File: strings.NewReader("x")},
		JobDescription: "job",
	})
	require.Nil(t, res)
	require.ErrorIs(t, err, serrors.ErrUnreadableDocument)
}

func TestCreateTextAnalysis(t *testing.T) {
	a, h := newTestHandler(t)
	want := sampleAnalysis()
	a.EXPECT().AnalyzeText(gomock.Any(), "Python and SQL", "Need SQL").Return(want, nil)

	res, err := h.CreateTextAnalysis(context.Background(), &v1specs.TextAnalysisRequest{
		ResumeText:     "Python and SQL",
		JobDescription: "Need SQL",
	})
	require.NoError(t, err)
	require.Equal(t, uuid.UUID(want.ID), res.ID)
	require.Equal(t, want.Matched, res.Matched)
}

func TestListSkills(t *testing.T) {
	_, h := newTestHandler(t)

	res, err := h.ListSkills(context.Background())
	require.NoError(t, err)
	require.Equal(t, catalog.Default().Skills(), res.Skills)
	require.Equal(t, "machine learning", res.Synonyms["ml"])
	require.Equal(t, "kubernetes", res.Synonyms["k8s"])
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"unreadable", serrors.KindOnly(serrors.ErrUnreadableDocument), http.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT"},
		{"missing job", serrors.KindOnly(serrors.ErrMissingJobDescription), http.StatusBadRequest, "MISSING_JOB_DESCRIPTION"},
		{"bad request", serrors.With(serrors.ErrBadRequest, "invalid payload"), http.StatusBadRequest, "BAD_REQUEST"},
		{"too large", serrors.KindOnly(serrors.ErrTooLarge), http.StatusRequestEntityTooLarge, "TOO_LARGE"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestHandler(t)

			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.Equal(t, tt.wantKind, res.Response.Error.Kind)
			require.NotEmpty(t, res.Response.Error.Message)
			require.NotContains(t, res.Response.Error.Message, "boom")
			require.False(t, res.Response.Error.RequestId.IsSet())
		})
	}
}

func TestNewError_BadRequestMessage(t *testing.T) {
	_, h := newTestHandler(t)

	res := h.NewError(context.Background(), serrors.With(serrors.ErrBadRequest, "invalid payload: missing resume"))
	require.Equal(t, "invalid payload: missing resume", res.Response.Error.Message)
}

func TestNewError_RequestID(t *testing.T) {
	_, h := newTestHandler(t)

	ctx := context.WithValue(context.Background(), controller.RequestIDKey, "req-123")
	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrMissingJobDescription))
	id, ok := res.Response.Error.RequestId.Get()
	require.True(t, ok)
	require.Equal(t, "req-123", id)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			"decode failure",
			&ogenerrors.DecodeRequestError{Err: errors.New(`missing field "resume"`)},
			http.StatusBadRequest,
			"BAD_REQUEST",
		},
		{
			"body too large",
			&ogenerrors.DecodeRequestError{Err: fmt.Errorf("parse multipart form: %w", &http.MaxBytesError{Limit: 512})},
			http.StatusRequestEntityTooLarge,
			"TOO_LARGE",
		},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestHandler(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/analyses", nil)

			h.HandleError(req.Context(), rec, req, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.Contains(t, rec.Body.String(), `"kind":"`+tt.wantKind+`"`)
		})
	}
}
