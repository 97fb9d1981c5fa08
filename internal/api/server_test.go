package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"skillmatch/internal/analyzer"
	mockanalyzer "skillmatch/internal/analyzer/mock"
	"skillmatch/internal/api"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/document"
	"skillmatch/pkg/similarity/editdistance"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testOptions() api.Options {
	return api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		MaxUploadBytes: 1 << 20,
	}
}

func newTestServer(t *testing.T, a analyzer.Analyzer, opts api.Options) *httptest.Server {
	t.Helper()

	h, err := api.NewHandler(api.Deps{Analyzer: a, Catalog: catalog.Default()}, opts)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestServer_OpsRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, mockanalyzer.NewMockAnalyzer(ctrl), testOptions())

	for path, wantType := range map[string]string{
		"/":              "text/html",
		"/healthz":       "text/plain",
		"/specs/v1.yaml": "application/yaml",
		"/v1/skills":     "application/json",
		"/v1/docs/":      "text/html",
		"/metrics":       "text/plain",
	} {
		res := get(t, srv.URL+path)
		require.Equal(t, http.StatusOK, res.StatusCode, path)
		require.Contains(t, res.Header.Get("Content-Type"), wantType, path)
		require.NotEmpty(t, res.Header.Get("X-Request-Id"), path)
		require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"), path)
	}
}

func TestServer_EndToEnd(t *testing.T) {
	a, err := analyzer.New(document.New(), editdistance.New(), catalog.Default(), analyzer.NewOptions())
	require.NoError(t, err)
	srv := newTestServer(t, a, testOptions())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Experienced in Python and SQL, strong communication skills."))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("jobDescription", "Looking for Python, Machine Learning, and SQL expertise."))
	require.NoError(t, mw.Close())

	res, err := http.Post(srv.URL+"/v1/analyses", mw.FormDataContentType(), &buf) //nolint: noctx
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var body bytes.Buffer
	_, err = body.ReadFrom(res.Body)
	require.NoError(t, err)
	require.Contains(t, body.String(), `"score":66.67`)
	require.Contains(t, body.String(), `"missing":["machine learning"]`)
}

func TestServer_UploadTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	opts := testOptions()
	opts.MaxUploadBytes = 512
	srv := newTestServer(t, mockanalyzer.NewMockAnalyzer(ctrl), opts)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(strings.Repeat("python ", 1000)))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	res, err := http.Post(srv.URL+"/v1/analyses", mw.FormDataContentType(), &buf) //nolint: noctx
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.GreaterOrEqual(t, res.StatusCode, http.StatusBadRequest)
	require.Less(t, res.StatusCode, http.StatusInternalServerError)
}

func TestServer_CORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, mockanalyzer.NewMockAnalyzer(ctrl), testOptions())

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/v1/analyses", nil) //nolint: noctx
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestServer_TextAnalysis(t *testing.T) {
	a, err := analyzer.New(document.New(), editdistance.New(), catalog.Default(), analyzer.NewOptions())
	require.NoError(t, err)
	srv := newTestServer(t, a, testOptions())

	res, err := http.Post(srv.URL+"/v1/analyses/text", "application/json", strings.NewReader( //nolint: noctx
		`{"resumeText":"Experienced in Python and SQL.","jobDescription":"AI and ML engineer needed"}`))
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var body bytes.Buffer
	_, err = body.ReadFrom(res.Body)
	require.NoError(t, err)
	require.Contains(t, body.String(), `"jobSkills":["machine learning"]`)
	require.Contains(t, body.String(), `"score":0`)
}

func TestServer_MissingResumeFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, mockanalyzer.NewMockAnalyzer(ctrl), testOptions())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("jobDescription", "Looking for Python"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/analyses", &buf) //nolint: noctx
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", "req-7")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var body bytes.Buffer
	_, err = body.ReadFrom(res.Body)
	require.NoError(t, err)
	require.Contains(t, body.String(), `"kind":"BAD_REQUEST"`)
	require.Contains(t, body.String(), `"requestId":"req-7"`)
}
