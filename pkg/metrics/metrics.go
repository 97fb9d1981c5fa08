// Package metrics sets up the OpenTelemetry meter provider backed by a
// Prometheus exporter and declares the instruments recorded per analysis.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets are histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// ScoreBuckets are histogram buckets for match scores in percent.
var ScoreBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100} //nolint: gochecknoglobals

const (
	// OutcomeAttr names the attribute attached to the analyses counter.
	OutcomeAttr = "outcome"

	OutcomeOK             = "ok"
	OutcomeUnreadable     = "unreadable"
	OutcomeMissingJob     = "missing_job"
	OutcomeInternalFailed = "error"
)

// Setup creates a meter provider exporting to reg and installs it as the
// global otel provider.
func Setup(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Instruments groups what the analyzer records.
type Instruments struct {
	Analyses metric.Int64Counter
	Duration metric.Float64Histogram
	Score    metric.Float64Histogram
}

// NewInstruments registers the analysis instruments on meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	analyses, err := meter.Int64Counter("skillmatch.analyses",
		metric.WithDescription("Number of résumé analyses by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create analyses counter: %w", err)
	}

	duration, err := meter.Float64Histogram("skillmatch.analysis.duration",
		metric.WithDescription("Time spent analyzing a résumé against a job description."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	score, err := meter.Float64Histogram("skillmatch.match.score",
		metric.WithDescription("Match score of successful analyses."),
		metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(ScoreBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create score histogram: %w", err)
	}

	return &Instruments{Analyses: analyses, Duration: duration, Score: score}, nil
}
