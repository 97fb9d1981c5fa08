// Package api configures the HTTP server: the upload form, the v1 JSON API,
// its OpenAPI document and Swagger UI, metrics, pprof and the middleware
// chain.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"skillmatch/internal/analyzer"
	"skillmatch/internal/api/handler/formhandler"
	"skillmatch/internal/api/handler/v1handler"
	"skillmatch/internal/api/specs/v1specs"
	"skillmatch/internal/config"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/controller"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
)

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target specs/v1specs --package v1specs --clean specs/v1.yaml

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. It is typically created
// from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is applied via http.TimeoutHandler to every request.
	RequestTimeout time.Duration
	// MaxHeaderBytes caps request header size, 0 means the net/http default.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// MaxUploadBytes caps request bodies.
	MaxUploadBytes int64
}

// NewOptions maps the HTTP related settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		MaxUploadBytes:    cfg.Upload.MaxBytes,
	}
}

// Deps are the services handlers call into.
type Deps struct {
	Analyzer analyzer.Analyzer
	Catalog  *catalog.Catalog
}

// NewHandler builds the routed and wrapped handler served by NewServer.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	// html form
	form, err := formhandler.New(formhandler.Deps{Analyzer: deps.Analyzer, Catalog: deps.Catalog})
	if err != nil {
		return nil, fmt.Errorf("could not create form handler: %w", err)
	}
	form.Register(mux)

	// v1 api
	v1 := v1handler.New(v1handler.Deps{Analyzer: deps.Analyzer, Catalog: deps.Catalog})
	v1Srv, err := v1specs.NewServer(v1,
		v1specs.WithErrorHandler(v1.HandleError),
		v1specs.WithMeterProvider(otel.GetMeterProvider()),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle("/v1/", v1Srv)

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Skill Match Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// ops
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle("GET "+metricsPath, promhttp.Handler())
	mux.Handle("/debug/pprof/", controller.PprofMux())
	mux.HandleFunc("GET /healthz", controller.Healthz)

	handler := controller.WithMaxBytes(opts.MaxUploadBytes)(mux)
	handler = controller.WithRecover(handler)
	handler = controller.WithCORS(handler)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":{"kind":"TIMEOUT","message":"request timed out"}}`)
	}

	return controller.WithLogger(handler), nil
}

// NewServer wires up and returns a configured *http.Server.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
