package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadgraph"
)

var miniExtract = filepath.Join("..", "..", "mapdata", "testdata", "mini.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"LVROUTE_MAP", "LVROUTE_WAY_FILTER", "LVROUTE_INDEX", "LVROUTE_ADDR", "LVROUTE_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	out, err := run(t, "route", "0", "0", "50", "100", "--map", miniExtract, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "route 1 → 4")
	assert.Contains(t, out, "3 nodes")
}

func TestRouteCommand_Errors(t *testing.T) {
	_, err := run(t, "route", "0", "0", "50")
	assert.Error(t, err)

	_, err = run(t, "route", "0", "zero", "50", "50", "--map", miniExtract)
	assert.Error(t, err)

	_, err = run(t, "route", "0", "0", "50", "50")
	assert.ErrorIs(t, err, errNoMap)

	_, err = run(t, "route", "0", "0", "50", "50", "--map", miniExtract, "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSnapshotThenStats(t *testing.T) {
	gob := filepath.Join(t.TempDir(), "mini.gob")

	out, err := run(t, "snapshot", miniExtract, gob)
	require.NoError(t, err)
	assert.Contains(t, out, "7 nodes, 4 ways")

	out, err = run(t, "stats", "--map", gob)
	require.NoError(t, err)
	// The default filter drops the footway.
	assert.Contains(t, out, "ways:         3")
	assert.Contains(t, out, "nodes:        7")
}

func TestBuildPlanner_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Path = miniExtract
	cfg.Map.WayFilter = `kind != "footway" && kind != "service"`
	cfg.Search.Index = config.IndexKDTree
	cfg.Search.OnlyRoutable = true
	cfg.Search.TieBreak = config.TieLowerID
	cfg.Search.Relaxation = true
	cfg.Search.MaxExpansions = 100

	m, p, err := buildPlanner(cfg, cfg.Logger(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, 2, m.WayCount())
	assert.Same(t, m, p.Model())
	assert.Len(t, searchOptions(cfg), 3)

	cfg.Map.WayFilter = `highway +`
	_, _, err = buildPlanner(cfg, nil)
	assert.Error(t, err)
}

func TestSearchOptions_Defaults(t *testing.T) {
	assert.Empty(t, searchOptions(config.Default()))
}

func TestRouteCommand_SnapsToRoadNodes(t *testing.T) {
	// (0, 82) lies on node 6, which only the dropped footway references.
	out, err := run(t, "route", "0", "82", "100", "0", "--map", miniExtract)
	require.NoError(t, err)
	assert.Contains(t, out, "route 4 → 3")
}

func TestBuildPlanner_OnlyRoutableDefault(t *testing.T) {
	q := planner.Query{StartX: 0, StartY: 82, EndX: 100, EndY: 0}

	cfg := config.Default()
	require.True(t, cfg.Search.OnlyRoutable)
	cfg.Map.Path = miniExtract
	_, p, err := buildPlanner(cfg, nil)
	require.NoError(t, err)
	route, err := p.Plan(context.Background(), q)
	require.NoError(t, err)
	assert.True(t, route.Found)
	assert.Equal(t, roadgraph.NodeID(4), route.Start.ID)

	cfg.Search.OnlyRoutable = false
	_, p, err = buildPlanner(cfg, nil)
	require.NoError(t, err)
	route, err = p.Plan(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, roadgraph.NodeID(6), route.Start.ID)
	assert.False(t, route.Found)
}
