package metrics_test

import (
	"context"
	"skillmatch/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func TestSetupAndRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.Setup(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	inst, err := metrics.NewInstruments(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	inst.Analyses.Add(ctx, 1, metric.WithAttributes(attribute.String(metrics.OutcomeAttr, metrics.OutcomeOK)))
	inst.Duration.Record(ctx, 0.02)
	inst.Score.Record(ctx, 66.67)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["skillmatch_analyses_total"], "got %v", names)
}

func TestBucketsSorted(t *testing.T) {
	for _, b := range [][]float64{metrics.DefaultBuckets, metrics.ScoreBuckets} {
		require.IsIncreasing(t, b)
	}
}
