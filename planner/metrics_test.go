package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadgen"
	"github.com/katalvlaran/lvroute/roadgraph"
)

// collect reads every metric from reader, keyed by instrument name.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func TestPlan_RecordsMetrics(t *testing.T) {
	data := roadgen.MustGenerate([]roadgen.Option{roadgen.WithSpacing(0.2)},
		roadgen.Grid(2, 2), roadgen.Cluster(0.8, 0.8, 2, 2))
	m, err := roadgraph.Build(data)
	require.NoError(t, err)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	p, err := planner.New(m, planner.WithMeter(mp.Meter(planner.InstrumentationName)))
	require.NoError(t, err)

	ctx := context.Background()
	found, err := p.Plan(ctx, planner.Query{StartX: 0, StartY: 0, EndX: 20, EndY: 20})
	require.NoError(t, err)
	require.True(t, found.Found)
	missing, err := p.Plan(ctx, planner.Query{StartX: 0, StartY: 0, EndX: 100, EndY: 100})
	require.NoError(t, err)
	require.False(t, missing.Found)
	// Rejected queries record nothing.
	_, err = p.Plan(ctx, planner.Query{StartX: 101})
	require.Error(t, err)

	got := collect(t, reader)

	count, ok := got["lvroute.plan.count"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "count is an int64 sum")
	byFound := map[bool]int64{}
	for _, dp := range count.DataPoints {
		v, ok := dp.Attributes.Value("found")
		require.True(t, ok, "count carries the found attribute")
		byFound[v.AsBool()] += dp.Value
	}
	assert.Equal(t, map[bool]int64{true: 1, false: 1}, byFound)

	distance, ok := got["lvroute.plan.distance"].Data.(metricdata.Histogram[float64])
	require.True(t, ok, "distance is a float64 histogram")
	require.Len(t, distance.DataPoints, 1)
	assert.Equal(t, uint64(1), distance.DataPoints[0].Count)
	assert.InDelta(t, found.DistanceMeters, distance.DataPoints[0].Sum, 1e-9)
	assert.Equal(t, "m", got["lvroute.plan.distance"].Unit)

	expanded, ok := got["lvroute.plan.expanded"].Data.(metricdata.Histogram[int64])
	require.True(t, ok, "expanded is an int64 histogram")
	require.Len(t, expanded.DataPoints, 1)
	assert.Equal(t, uint64(2), expanded.DataPoints[0].Count)
	assert.Equal(t, int64(found.Expanded+missing.Expanded), expanded.DataPoints[0].Sum)
}
