// SPDX-License-Identifier: MIT
// Package: lvroute/roadgen
//
// impl_jittered.go - JitteredGrid(rows, cols, dropProb).
//
// Contract:
//   • rows, cols ≥ 2; dropProb ∈ [0,1]; cfg.rng required.
//   • Every node is displaced by up to ±spacing/4 on each axis.
//   • Every lattice edge becomes its own two-node way, dropped with
//     probability dropProb; isolated nodes and split components are expected.
//   • Draw order is fixed (nodes row-major, then right/up edge per node), so a
//     seed reproduces the same network.

package roadgen

import (
	"fmt"

	"github.com/katalvlaran/lvroute/roadgraph"
)

const methodJittered = "JitteredGrid"

// JitteredGrid emits a perturbed lattice with randomly removed road segments.
func JitteredGrid(rows, cols int, dropProb float64) Constructor {
	return func(d *draft, cfg config) error {
		if rows < 2 || cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 2): %w", methodJittered, rows, cols, ErrTooFewNodes)
		}
		if dropProb < 0 || dropProb > 1 {
			return fmt.Errorf("%s: dropProb=%v: %w", methodJittered, dropProb, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodJittered, ErrNeedRandSource)
		}

		jitter := cfg.spacing / 4
		base := d.nextNode
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				jx := (cfg.rng.Float64()*2 - 1) * jitter
				jy := (cfg.rng.Float64()*2 - 1) * jitter
				d.addNode(cfg.originX+float64(c)*cfg.spacing+jx, cfg.originY+float64(r)*cfg.spacing+jy)
			}
		}

		at := func(r, c int) roadgraph.NodeID { return base + roadgraph.NodeID(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols && cfg.rng.Float64() >= dropProb {
					d.addWay(cfg.kind, false, at(r, c), at(r, c+1))
				}
				if r+1 < rows && cfg.rng.Float64() >= dropProb {
					d.addWay(cfg.kind, false, at(r, c), at(r+1, c))
				}
			}
		}
		if len(d.ways) == 0 {
			// Keep the data buildable even when every segment was dropped.
			d.addWay(cfg.kind, false, at(0, 0))
		}

		return nil
	}
}
