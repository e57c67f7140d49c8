package nearest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// FindClosestNode returns the node of m closest to (x, y) by a linear scan.
// Ties resolve to the lowest node id.
func FindClosestNode(m *roadgraph.Model, x, y float64, opts ...Option) (roadgraph.Node, error) {
	if m == nil {
		return roadgraph.Node{}, ErrEmptyGraph
	}

	return scan(candidates(m, resolve(opts)), x, y)
}

// Linear is a Finder backed by a linear scan over a fixed candidate set.
type Linear struct {
	nodes []roadgraph.Node
}

// NewLinear prepares a linear finder over m.
func NewLinear(m *roadgraph.Model, opts ...Option) (*Linear, error) {
	if m == nil {
		return nil, ErrEmptyGraph
	}
	nodes := candidates(m, resolve(opts))
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	return &Linear{nodes: nodes}, nil
}

// Closest implements Finder.
func (l *Linear) Closest(x, y float64) (roadgraph.Node, error) {
	return scan(l.nodes, x, y)
}

func scan(nodes []roadgraph.Node, x, y float64) (roadgraph.Node, error) {
	if err := checkCoordinate(x, y); err != nil {
		return roadgraph.Node{}, err
	}
	if len(nodes) == 0 {
		return roadgraph.Node{}, ErrEmptyGraph
	}

	q := roadgraph.Point{X: x, Y: y}
	best := 0
	bestD := nodes[0].DistanceSq(q)
	for i := 1; i < len(nodes); i++ {
		// nodes are sorted by id, so strict < keeps the lowest id on ties.
		if d := nodes[i].DistanceSq(q); d < bestD {
			best, bestD = i, d
		}
	}

	return nodes[best], nil
}

func checkCoordinate(x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, x, y)
	}

	return nil
}
