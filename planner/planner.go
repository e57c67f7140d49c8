package planner

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/nearest"
	"github.com/katalvlaran/lvroute/roadgraph"
)

const percent = 100.0

// Planner resolves percent queries to routes on one model.
type Planner struct {
	m       *roadgraph.Model
	options Options
	metrics *planMetrics
}

// planMetrics holds the instruments created once in New.
type planMetrics struct {
	count    metric.Int64Counter
	distance metric.Float64Histogram
	expanded metric.Int64Histogram
}

// New prepares a Planner over m.
func New(m *roadgraph.Model, opts ...Option) (*Planner, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Finder == nil {
		f, err := nearest.NewLinear(m)
		if err != nil {
			return nil, fmt.Errorf("planner: %w", err)
		}
		cfg.Finder = f
	}

	pm, err := newPlanMetrics(cfg.Meter)
	if err != nil {
		return nil, err
	}

	return &Planner{m: m, options: cfg, metrics: pm}, nil
}

func newPlanMetrics(meter metric.Meter) (*planMetrics, error) {
	pm := &planMetrics{}
	var err error

	pm.count, err = meter.Int64Counter(
		"lvroute.plan.count",
		metric.WithDescription("Number of route queries answered"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: create count counter: %w", err)
	}

	pm.distance, err = meter.Float64Histogram(
		"lvroute.plan.distance",
		metric.WithDescription("Length of found routes"),
		metric.WithUnit("m"),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: create distance histogram: %w", err)
	}

	pm.expanded, err = meter.Int64Histogram(
		"lvroute.plan.expanded",
		metric.WithDescription("Nodes expanded per search"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("planner: create expanded histogram: %w", err)
	}

	return pm, nil
}

// Model returns the model the planner routes on.
func (p *Planner) Model() *roadgraph.Model { return p.m }

// Plan answers q. ctx cancels the search between frontier pops.
func (p *Planner) Plan(ctx context.Context, q Query) (*Route, error) {
	started := time.Now()
	ctx, span := p.options.Tracer.Start(ctx, "planner.plan", trace.WithAttributes(
		attribute.Float64("query.start_x", q.StartX),
		attribute.Float64("query.start_y", q.StartY),
		attribute.Float64("query.end_x", q.EndX),
		attribute.Float64("query.end_y", q.EndY),
	))
	defer span.End()

	route, err := p.plan(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.options.Logger.WarnContext(ctx, "route query failed", "error", err)

		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("route.start_id", int64(route.Start.ID)),
		attribute.Int64("route.goal_id", int64(route.Goal.ID)),
		attribute.Bool("route.found", route.Found),
		attribute.Int("route.expanded", route.Expanded),
		attribute.Float64("route.distance_m", route.DistanceMeters),
	)
	span.SetStatus(codes.Ok, "")

	status := attribute.Bool("found", route.Found)
	p.metrics.count.Add(ctx, 1, metric.WithAttributes(status))
	p.metrics.expanded.Record(ctx, int64(route.Expanded))
	if route.Found {
		p.metrics.distance.Record(ctx, route.DistanceMeters)
	}

	p.options.Logger.InfoContext(ctx, "route query",
		"start", route.Start.ID,
		"goal", route.Goal.ID,
		"found", route.Found,
		"nodes", route.Path.Len(),
		"distance_m", route.DistanceMeters,
		"expanded", route.Expanded,
		"elapsed", time.Since(started),
	)

	return route, nil
}

func (p *Planner) plan(ctx context.Context, q Query) (*Route, error) {
	// 1) Validate and normalize.
	for _, v := range [...]float64{q.StartX, q.StartY, q.EndX, q.EndY} {
		if math.IsNaN(v) || v < 0 || v > percent {
			return nil, fmt.Errorf("%w: %v not in [0, %v]", ErrQueryOutOfRange, v, percent)
		}
	}

	// 2) Snap both points.
	start, err := p.options.Finder.Closest(q.StartX/percent, q.StartY/percent)
	if err != nil {
		return nil, fmt.Errorf("planner: resolve start: %w", err)
	}
	goal, err := p.options.Finder.Closest(q.EndX/percent, q.EndY/percent)
	if err != nil {
		return nil, fmt.Errorf("planner: resolve goal: %w", err)
	}
	p.options.Logger.DebugContext(ctx, "resolved query points", "start", start.ID, "goal", goal.ID)

	// 3) Search.
	opts := make([]astar.Option, 0, len(p.options.SearchOptions)+1)
	opts = append(opts, p.options.SearchOptions...)
	opts = append(opts, astar.WithContext(ctx))
	res, err := astar.Search(p.m, start.ID, goal.ID, opts...)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	return &Route{
		Start:          start,
		Goal:           goal,
		Path:           res.Path,
		DistanceMeters: res.Path.Distance,
		Found:          res.Found(),
		Expanded:       res.Expanded,
	}, nil
}
