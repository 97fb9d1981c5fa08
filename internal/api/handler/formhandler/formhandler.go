// Package formhandler serves the interactive upload form.
package formhandler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"skillmatch/internal/analyzer"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/controller"
	"skillmatch/pkg/domain"
	"skillmatch/pkg/logger"
	"skillmatch/pkg/serrors"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templates embed.FS

// Deps are the services the form handlers call into.
type Deps struct {
	Analyzer analyzer.Analyzer
	Catalog  *catalog.Catalog
}

type Handler struct {
	deps Deps
	page *template.Template
}

type pageData struct {
	SkillCount     int
	JobDescription string
	Error          string
	RequestID      string
	Result         *domain.Analysis
}

func New(deps Deps) (*Handler, error) {
	page, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse form template: %w", err)
	}

	return &Handler{deps: deps, page: page}, nil
}

// Register adds the form routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /analyze", h.Analyze)
}

// Index renders the empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageData{})
}

// Analyze handles a form submission and renders the result, or the error,
// below the form.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := parseUpload(r)
	if err == nil {
		var res *domain.Analysis
		res, err = h.deps.Analyzer.Analyze(ctx, in)
		if err == nil {
			h.render(w, r, http.StatusOK, pageData{JobDescription: in.JobDescription, Result: res})

			return
		}
	}

	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "form analysis failed", zap.Error(err))
	}
	h.render(w, r, status, pageData{JobDescription: in.JobDescription, Error: serrors.UserMessage(err)})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.SkillCount = h.deps.Catalog.Len()
	if data.Error != "" {
		data.RequestID = controller.RequestID(r.Context())
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.Error(r.Context(), "could not render form", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
