// SPDX-License-Identifier: MIT
// Package: lvroute/roadgen
//
// api.go - public entry-point for synthetic road networks.
//
// Design contract:
//   - One orchestrator: Generate(opts, cons...). Resolves cfg, runs cons in order
//     against a shared draft, returns roadgraph.ProviderData.
//   - Node ids are assigned sequentially from 1 in emission order; way ids too.
//     Composing constructors therefore never produces colliding ids.
//   - Determinism: same options, seed and constructor order ⇒ identical data.
//   - Constructors return sentinel errors; only option constructors panic.

// Package roadgen builds deterministic synthetic road networks (squares,
// lines, grids, disconnected clusters, jittered grids) in the provider format
// consumed by roadgraph.Build. It backs tests, benchmarks and examples.
package roadgen

import (
	"fmt"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// Constructor appends nodes and ways to the draft using the resolved config.
type Constructor func(d *draft, cfg config) error

// Generate resolves opts, applies every constructor in order and returns the
// accumulated provider data. Constructor errors are wrapped with "Generate: %w".
func Generate(opts []Option, cons ...Constructor) (roadgraph.ProviderData, error) {
	cfg := newConfig(opts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return roadgraph.ProviderData{}, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return roadgraph.ProviderData{}, fmt.Errorf("Generate: %w", err)
		}
	}

	return roadgraph.ProviderData{
		Nodes:  d.nodes,
		Ways:   d.ways,
		Bounds: cfg.bounds,
	}, nil
}

// MustGenerate is Generate for fixtures known to be valid; it panics on error.
func MustGenerate(opts []Option, cons ...Constructor) roadgraph.ProviderData {
	data, err := Generate(opts, cons...)
	if err != nil {
		panic(err)
	}

	return data
}
