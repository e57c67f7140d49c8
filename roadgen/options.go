// SPDX-License-Identifier: MIT
// Package: lvroute/roadgen
//
// options.go - functional options and the resolved config.
//
// Deterministic defaults:
//   • origin  = (0,0)
//   • spacing = 0.1 (normalized units between adjacent grid nodes)
//   • kind    = residential
//   • bounds  = a 0.02°×0.03° box, enough for a positive metric scale
//   • rng     = nil (stochastic constructors require WithSeed/WithRand)

package roadgen

import (
	"math/rand"

	"github.com/katalvlaran/lvroute/roadgraph"
)

const (
	defaultSpacing = 0.1
	defaultKind    = roadgraph.KindResidential
)

// defaultBounds is a small box around a city center in degrees.
var defaultBounds = roadgraph.Bounds{MinLat: 52.50, MaxLat: 52.52, MinLon: 13.40, MaxLon: 13.43}

// config is passed by value to constructors.
type config struct {
	originX, originY float64
	spacing          float64
	kind             roadgraph.RoadKind
	bounds           roadgraph.Bounds
	rng              *rand.Rand
}

// Option customizes generation.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		spacing: defaultSpacing,
		kind:    defaultKind,
		bounds:  defaultBounds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin moves the lower-left corner of every constructor's layout.
func WithOrigin(x, y float64) Option {
	return func(c *config) {
		c.originX, c.originY = x, y
	}
}

// WithSpacing sets the distance between adjacent grid or line nodes.
// Panics unless spacing > 0.
func WithSpacing(spacing float64) Option {
	if !(spacing > 0) {
		panic("roadgen: WithSpacing requires a positive value")
	}
	return func(c *config) {
		c.spacing = spacing
	}
}

// WithKind sets the road kind assigned to generated ways.
func WithKind(kind roadgraph.RoadKind) Option {
	return func(c *config) {
		c.kind = kind
	}
}

// WithBounds sets the declared bounding box reported in the provider data.
func WithBounds(b roadgraph.Bounds) Option {
	return func(c *config) {
		c.bounds = b
	}
}

// WithSeed attaches a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("roadgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
