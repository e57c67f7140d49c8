package main

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/mapdata"
	"github.com/katalvlaran/lvroute/nearest"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadgraph"
	"github.com/katalvlaran/lvroute/wayfilter"
)

const instrumentation = "github.com/katalvlaran/lvroute"

var errNoMap = errors.New("no map configured (set --map, map.path or LVROUTE_MAP)")

// loadModel reads the configured map and builds the routable model.
func loadModel(cfg *config.Config) (*roadgraph.Model, error) {
	if cfg.Map.Path == "" {
		return nil, errNoMap
	}
	data, err := mapdata.LoadAny(cfg.Map.Path)
	if err != nil {
		return nil, err
	}

	var opts []roadgraph.Option
	if cfg.Map.WayFilter != "" {
		f, err := wayfilter.Compile(cfg.Map.WayFilter)
		if err != nil {
			return nil, fmt.Errorf("map.way_filter: %w", err)
		}
		opts = append(opts, roadgraph.WithWayFilter(f.Predicate()))
	}
	if cfg.Map.MetricScale > 0 {
		opts = append(opts, roadgraph.WithMetricScale(cfg.Map.MetricScale))
	}

	return roadgraph.Build(data, opts...)
}

// buildPlanner wires model, finder and search options from cfg.
func buildPlanner(cfg *config.Config, logger *slog.Logger) (*roadgraph.Model, *planner.Planner, error) {
	m, err := loadModel(cfg)
	if err != nil {
		return nil, nil, err
	}

	var nopts []nearest.Option
	if cfg.Search.OnlyRoutable {
		nopts = append(nopts, nearest.OnlyRoutable())
	}
	var finder nearest.Finder
	switch cfg.Search.Index {
	case config.IndexKDTree:
		finder, err = nearest.NewKDTree(m, nopts...)
	default:
		finder, err = nearest.NewLinear(m, nopts...)
	}
	if err != nil {
		return nil, nil, err
	}

	p, err := planner.New(m,
		planner.WithLogger(logger),
		planner.WithTracer(otel.Tracer(instrumentation)),
		planner.WithMeter(otel.Meter(instrumentation)),
		planner.WithFinder(finder),
		planner.WithSearchOptions(searchOptions(cfg)...),
	)
	if err != nil {
		return nil, nil, err
	}

	return m, p, nil
}

func searchOptions(cfg *config.Config) []astar.Option {
	var opts []astar.Option
	if cfg.Search.TieBreak == config.TieLowerID {
		opts = append(opts, astar.WithTieBreak(astar.TieLowerID))
	}
	if cfg.Search.Relaxation {
		opts = append(opts, astar.WithRelaxation())
	}
	if cfg.Search.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(cfg.Search.MaxExpansions))
	}

	return opts
}
