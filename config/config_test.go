package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/wayfilter"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	for _, k := range []string{"LVROUTE_MAP", "LVROUTE_WAY_FILTER", "LVROUTE_INDEX", "LVROUTE_ADDR", "LVROUTE_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, config.IndexLinear, cfg.Search.Index)
	assert.True(t, cfg.Search.OnlyRoutable)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join("testdata", "lvroute.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "testdata/city.yaml", cfg.Map.Path)
	assert.Equal(t, 1200.0, cfg.Map.MetricScale)
	// Unset keys keep their defaults.
	assert.Equal(t, wayfilter.Default, cfg.Map.WayFilter)
	assert.Equal(t, config.IndexKDTree, cfg.Search.Index)
	assert.True(t, cfg.Search.OnlyRoutable)
	assert.Equal(t, config.TieLowerID, cfg.Search.TieBreak)
	assert.True(t, cfg.Search.Relaxation)
	assert.Equal(t, 50000, cfg.Search.MaxExpansions)
	assert.Equal(t, []string{"https://maps.example.org"}, cfg.Server.CORSOrigins)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LVROUTE_MAP", "/srv/maps/berlin.gob")
	t.Setenv("LVROUTE_ADDR", "127.0.0.1:7000")
	t.Setenv("LVROUTE_INDEX", "linear")
	t.Setenv("LVROUTE_LOG_LEVEL", "WARN")
	t.Setenv("LVROUTE_WAY_FILTER", `kind == "motorway"`)

	cfg, err := config.Load(filepath.Join("testdata", "lvroute.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/maps/berlin.gob", cfg.Map.Path)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, config.IndexLinear, cfg.Search.Index)
	assert.Equal(t, `kind == "motorway"`, cfg.Map.WayFilter)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("search: [1, 2"), 0o600))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("LVROUTE_INDEX", "rtree")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	mutations := map[string]func(c *config.Config){
		"tie break":      func(c *config.Config) { c.Search.TieBreak = "random" },
		"max expansions": func(c *config.Config) { c.Search.MaxExpansions = -1 },
		"metric scale":   func(c *config.Config) { c.Map.MetricScale = -5 },
		"empty addr":     func(c *config.Config) { c.Server.Addr = "" },
		"log level":      func(c *config.Config) { c.Log.Level = "loud" },
		"log format":     func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
	assert.NoError(t, config.Default().Validate())
}

func TestLogger_Format(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"
	assert.NotNil(t, cfg.Logger(os.Stderr))
	assert.True(t, cfg.Logger(os.Stderr).Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, cfg.Logger(os.Stderr).Enabled(t.Context(), slog.LevelDebug))
}
