package nearest_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/nearest"
	"github.com/katalvlaran/lvroute/roadgen"
	"github.com/katalvlaran/lvroute/roadgraph"
)

func buildModel(t testing.TB, opts []roadgen.Option, cons ...roadgen.Constructor) *roadgraph.Model {
	t.Helper()
	data, err := roadgen.Generate(opts, cons...)
	require.NoError(t, err)
	m, err := roadgraph.Build(data)
	require.NoError(t, err)

	return m
}

// bruteForce is the reference: minimal distance, then lowest id.
func bruteForce(m *roadgraph.Model, x, y float64) roadgraph.Node {
	q := roadgraph.Point{X: x, Y: y}
	var best roadgraph.Node
	bestD := math.Inf(1)
	for _, n := range m.Nodes() {
		d := n.DistanceSq(q)
		if d < bestD || (d == bestD && n.ID < best.ID) {
			best, bestD = n, d
		}
	}

	return best
}

func TestFindClosestNode_SquareCorners(t *testing.T) {
	m := buildModel(t, nil, roadgen.Square(1))

	n, err := nearest.FindClosestNode(m, 0.1, 0.05)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(1), n.ID)

	n, err = nearest.FindClosestNode(m, 0.9, 0.8)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(3), n.ID)
}

func TestFindClosestNode_TieGoesToLowestID(t *testing.T) {
	m := buildModel(t, nil, roadgen.Square(1))

	// The center is equidistant from all four corners.
	n, err := nearest.FindClosestNode(m, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(1), n.ID)

	tree, err := nearest.NewKDTree(m)
	require.NoError(t, err)
	n, err = tree.Closest(0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(1), n.ID)

	// Midpoint of the top edge: 3 and 4 tie.
	n, err = tree.Closest(0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(3), n.ID)
}

func TestFindClosestNode_Errors(t *testing.T) {
	m := buildModel(t, nil, roadgen.Square(1))

	_, err := nearest.FindClosestNode(m, math.NaN(), 0)
	assert.ErrorIs(t, err, nearest.ErrInvalidCoordinate)
	_, err = nearest.FindClosestNode(m, 0, math.Inf(-1))
	assert.ErrorIs(t, err, nearest.ErrInvalidCoordinate)
	_, err = nearest.FindClosestNode(nil, 0, 0)
	assert.ErrorIs(t, err, nearest.ErrEmptyGraph)

	_, err = nearest.NewKDTree(nil)
	assert.ErrorIs(t, err, nearest.ErrEmptyGraph)
	_, err = nearest.NewLinear(nil)
	assert.ErrorIs(t, err, nearest.ErrEmptyGraph)
}

func TestOnlyRoutable_SkipsIsolatedNodes(t *testing.T) {
	data := roadgen.MustGenerate(nil, roadgen.Square(1))
	data.Nodes = append(data.Nodes, roadgraph.RawNode{ID: 100, X: 0.5, Y: 0.5})
	m, err := roadgraph.Build(data)
	require.NoError(t, err)

	n, err := nearest.FindClosestNode(m, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(100), n.ID)

	n, err = nearest.FindClosestNode(m, 0.5, 0.5, nearest.OnlyRoutable())
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(1), n.ID)

	tree, err := nearest.NewKDTree(m, nearest.OnlyRoutable())
	require.NoError(t, err)
	assert.Equal(t, 4, tree.Len())
}

func TestFinders_MatchBruteForce(t *testing.T) {
	m := buildModel(t, []roadgen.Option{roadgen.WithSeed(3), roadgen.WithSpacing(0.05)},
		roadgen.JitteredGrid(20, 20, 0.2))

	linear, err := nearest.NewLinear(m)
	require.NoError(t, err)
	tree, err := nearest.NewKDTree(m)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		x, y := rng.Float64()*1.2-0.1, rng.Float64()*1.2-0.1
		want := bruteForce(m, x, y)

		got, err := nearest.FindClosestNode(m, x, y)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID, "linear at (%v, %v)", x, y)

		got, err = linear.Closest(x, y)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID, "Linear at (%v, %v)", x, y)

		got, err = tree.Closest(x, y)
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID, "KDTree at (%v, %v)", x, y)
	}
}

func TestKDTree_ExactHitsOnRegularGrid(t *testing.T) {
	// A regular grid has many equal coordinates on both axes.
	m := buildModel(t, nil, roadgen.Grid(7, 7))
	tree, err := nearest.NewKDTree(m)
	require.NoError(t, err)

	for _, n := range m.Nodes() {
		got, err := tree.Closest(n.X, n.Y)
		require.NoError(t, err)
		assert.Equal(t, n.ID, got.ID)
	}
}

func BenchmarkFinders(b *testing.B) {
	m := buildModel(b, []roadgen.Option{roadgen.WithSeed(1), roadgen.WithSpacing(0.01)},
		roadgen.JitteredGrid(100, 100, 0.1))
	linear, _ := nearest.NewLinear(m)
	tree, _ := nearest.NewKDTree(m)

	for name, f := range map[string]nearest.Finder{"linear": linear, "kdtree": tree} {
		b.Run(name, func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < b.N; i++ {
				_, _ = f.Closest(rng.Float64(), rng.Float64())
			}
		})
	}
}
