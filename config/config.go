// Package config loads lvroute settings.
//
// Precedence, lowest first: built-in defaults, the YAML file, then
// environment variables (a .env file in the working directory is loaded into
// the environment first and never overrides variables already set).
//
//	LVROUTE_MAP          map.path
//	LVROUTE_WAY_FILTER   map.way_filter
//	LVROUTE_INDEX        search.index
//	LVROUTE_ADDR         server.addr
//	LVROUTE_LOG_LEVEL    log.level
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/wayfilter"
)

// ErrInvalidConfig indicates settings that fail Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Index names accepted by search.index.
const (
	IndexLinear = "linear"
	IndexKDTree = "kdtree"
)

// Tie-break names accepted by search.tie_break.
const (
	TieInsertion = "insertion"
	TieLowerID   = "lower_id"
)

// Config holds every lvroute setting, grouped as in the YAML file.
type Config struct {
	Map struct {
		Path        string  `yaml:"path"`
		WayFilter   string  `yaml:"way_filter"`
		MetricScale float64 `yaml:"metric_scale"` // overrides the bounds-derived scale when > 0
	} `yaml:"map"`
	Search struct {
		Index         string `yaml:"index"`
		OnlyRoutable  bool   `yaml:"only_routable"`
		TieBreak      string `yaml:"tie_break"`
		Relaxation    bool   `yaml:"relaxation"`
		MaxExpansions int    `yaml:"max_expansions"`
	} `yaml:"search"`
	Server struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text or json
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	var cfg Config
	cfg.Map.WayFilter = wayfilter.Default
	cfg.Search.Index = IndexLinear
	cfg.Search.OnlyRoutable = true
	cfg.Search.TieBreak = TieInsertion
	cfg.Server.Addr = ":8080"
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return &cfg
}

// Load resolves settings from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates them.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config over defaults
	cfg := Default()
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	// 3. Override with environment variables if present
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LVROUTE_MAP"); v != "" {
		c.Map.Path = v
	}
	if v := os.Getenv("LVROUTE_WAY_FILTER"); v != "" {
		c.Map.WayFilter = v
	}
	if v := os.Getenv("LVROUTE_INDEX"); v != "" {
		c.Search.Index = v
	}
	if v := os.Getenv("LVROUTE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LVROUTE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks enumerations and ranges. The map path may be empty; commands
// that need a map check it themselves.
func (c *Config) Validate() error {
	switch c.Search.Index {
	case IndexLinear, IndexKDTree:
	default:
		return fmt.Errorf("%w: search.index %q (want %s or %s)", ErrInvalidConfig, c.Search.Index, IndexLinear, IndexKDTree)
	}
	switch c.Search.TieBreak {
	case TieInsertion, TieLowerID:
	default:
		return fmt.Errorf("%w: search.tie_break %q (want %s or %s)", ErrInvalidConfig, c.Search.TieBreak, TieInsertion, TieLowerID)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be ≥ 0", ErrInvalidConfig)
	}
	if c.Map.MetricScale < 0 {
		return fmt.Errorf("%w: map.metric_scale must be ≥ 0", ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// SlogLevel parses log.level (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return lvl, nil
}

// Logger builds the process logger described by the log section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
