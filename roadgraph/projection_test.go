package roadgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/roadgraph"
)

func TestMercator_Origin(t *testing.T) {
	assert.InDelta(t, 0, roadgraph.MercatorX(0), 1e-9)
	assert.InDelta(t, 0, roadgraph.MercatorY(0), 1e-9)
	// One degree of longitude at the equator is 2πR/360 meters.
	assert.InDelta(t, 2*math.Pi*roadgraph.EarthRadius/360, roadgraph.MercatorX(1), 1e-6)
}

func TestScaleFromBounds_ShorterSide(t *testing.T) {
	b := roadgraph.Bounds{MinLat: 0, MaxLat: 1, MinLon: 0, MaxLon: 2}
	scale, err := roadgraph.ScaleFromBounds(b)
	require.NoError(t, err)
	// Latitude span is the shorter one here.
	assert.InDelta(t, roadgraph.MercatorY(1), scale, 1e-6)
}

func TestScaleFromBounds_Rejects(t *testing.T) {
	for _, b := range []roadgraph.Bounds{
		{},
		{MinLat: 1, MaxLat: 0, MinLon: 0, MaxLon: 1},
		{MinLat: 0, MaxLat: 1, MinLon: 1, MaxLon: 1},
		{MinLat: -90, MaxLat: 0, MinLon: 0, MaxLon: 1},
		{MinLat: 0, MaxLat: math.NaN(), MinLon: 0, MaxLon: 1},
		{MinLat: 0, MaxLat: 1, MinLon: math.NaN(), MaxLon: 1},
		{MinLat: 0, MaxLat: 1, MinLon: 0, MaxLon: math.Inf(1)},
		{MinLat: math.Inf(-1), MaxLat: 1, MinLon: 0, MaxLon: 1},
	} {
		_, err := roadgraph.ScaleFromBounds(b)
		assert.Error(t, err, "bounds %+v", b)
	}
}

func TestNormalize_CornersOfBox(t *testing.T) {
	b := roadgraph.Bounds{MinLat: 52.50, MaxLat: 52.52, MinLon: 13.40, MaxLon: 13.43}
	scale, err := roadgraph.ScaleFromBounds(b)
	require.NoError(t, err)

	sw := roadgraph.Normalize(b, scale, b.MinLat, b.MinLon)
	assert.InDelta(t, 0, sw.X, 1e-12)
	assert.InDelta(t, 0, sw.Y, 1e-12)

	ne := roadgraph.Normalize(b, scale, b.MaxLat, b.MaxLon)
	// The shorter side spans exactly 1, the longer one at least 1.
	assert.InDelta(t, 1, math.Min(ne.X, ne.Y), 1e-9)
	assert.GreaterOrEqual(t, math.Max(ne.X, ne.Y), 1.0)
}
