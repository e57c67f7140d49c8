// SPDX-License-Identifier: MIT
// Package: lvroute/roadgen
//
// impl_shapes.go - Square, Line, Grid and Cluster constructors.
//
// Layouts (y grows north):
//
//	Square(s):  4───3      ids 1..4 counter-clockwise from the origin,
//	            │   │      one closed way 1,2,3,4,1
//	            1───2
//
//	Line(n):    1──2──3──…──n   one way, spacing apart
//
//	Grid(r,c):  row-major ids, one way per row and one per column.
//
// Determinism: node ids row-major, row ways before column ways.

package roadgen

import (
	"fmt"

	"github.com/katalvlaran/lvroute/roadgraph"
)

const (
	methodSquare  = "Square"
	methodLine    = "Line"
	methodGrid    = "Grid"
	methodCluster = "Cluster"
	minLineNodes  = 2
	minGridDim    = 1
)

// Square emits four corners side apart, joined by one closed way.
func Square(side float64) Constructor {
	return func(d *draft, cfg config) error {
		if !(side > 0) {
			return fmt.Errorf("%s: side=%v must be positive: %w", methodSquare, side, ErrTooFewNodes)
		}
		x, y := cfg.originX, cfg.originY
		a := d.addNode(x, y)
		b := d.addNode(x+side, y)
		c := d.addNode(x+side, y+side)
		e := d.addNode(x, y+side)
		d.addWay(cfg.kind, false, a, b, c, e, a)

		return nil
	}
}

// Line emits n collinear nodes along X, spacing apart, joined by one way.
func Line(n int) Constructor {
	return func(d *draft, cfg config) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLine, n, minLineNodes, ErrTooFewNodes)
		}
		ids := make([]roadgraph.NodeID, n)
		for i := range ids {
			ids[i] = d.addNode(cfg.originX+float64(i)*cfg.spacing, cfg.originY)
		}
		d.addWay(cfg.kind, false, ids...)

		return nil
	}
}

// Grid emits a rows×cols lattice at the configured origin.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		emitGrid(d, cfg, cfg.originX, cfg.originY, rows, cols)

		return nil
	}
}

// Cluster emits a Grid shifted by (dx, dy) from the origin and sharing no
// way with anything emitted before, so it forms its own component.
func Cluster(dx, dy float64, rows, cols int) Constructor {
	return func(d *draft, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodCluster, rows, cols, minGridDim, ErrTooFewNodes)
		}
		emitGrid(d, cfg, cfg.originX+dx, cfg.originY+dy, rows, cols)

		return nil
	}
}

func emitGrid(d *draft, cfg config, x0, y0 float64, rows, cols int) {
	ids := make([][]roadgraph.NodeID, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]roadgraph.NodeID, cols)
		for c := 0; c < cols; c++ {
			ids[r][c] = d.addNode(x0+float64(c)*cfg.spacing, y0+float64(r)*cfg.spacing)
		}
	}
	if cols > 1 {
		for r := 0; r < rows; r++ {
			d.addWay(cfg.kind, false, ids[r]...)
		}
	}
	if rows > 1 {
		for c := 0; c < cols; c++ {
			col := make([]roadgraph.NodeID, rows)
			for r := 0; r < rows; r++ {
				col[r] = ids[r][c]
			}
			d.addWay(cfg.kind, false, col...)
		}
	}
	// A 1×1 grid still needs a way to be buildable; emit a degenerate one.
	if rows == 1 && cols == 1 {
		d.addWay(cfg.kind, false, ids[0][0])
	}
}
