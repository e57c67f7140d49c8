package planner

import (
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/nearest"
	"github.com/katalvlaran/lvroute/roadgraph"
)

// InstrumentationName names the tracer and meter of this package.
const InstrumentationName = "github.com/katalvlaran/lvroute/planner"

var (
	// ErrNilModel indicates New was called without a model.
	ErrNilModel = errors.New("planner: model is nil")

	// ErrQueryOutOfRange indicates a query coordinate outside [0, 100] or not finite.
	ErrQueryOutOfRange = errors.New("planner: query coordinate out of range")
)

// Query is a route request in percent of the map extent, 0 to 100 on each axis.
type Query struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Route is the answer to a Query.
type Route struct {
	Start          roadgraph.Node
	Goal           roadgraph.Node
	Path           astar.Path
	DistanceMeters float64
	Found          bool
	Expanded       int
}

// Options configures a Planner.
type Options struct {
	Logger        *slog.Logger
	Tracer        trace.Tracer
	Meter         metric.Meter
	Finder        nearest.Finder
	SearchOptions []astar.Option
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a discarding logger, noop tracer and meter, and no
// finder (New falls back to a linear scan over all nodes).
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer: tracenoop.NewTracerProvider().Tracer(InstrumentationName),
		Meter:  metricnoop.NewMeterProvider().Meter(InstrumentationName),
	}
}

// WithLogger sets the structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the tracer used for the planner.plan span. nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMeter sets the meter for plan metrics. nil is ignored.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithFinder sets how query points snap to nodes.
func WithFinder(f nearest.Finder) Option {
	return func(o *Options) {
		o.Finder = f
	}
}

// WithSearchOptions appends options passed to every astar.Search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.SearchOptions = append(o.SearchOptions, opts...)
	}
}
