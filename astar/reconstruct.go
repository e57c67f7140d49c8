package astar

import (
	"fmt"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// Reconstruct walks parents from goal back to start and returns the route in
// start→goal order. Edge lengths are summed in normalized space and scaled to
// meters once with m.MetricScale().
//
// The walk is bounded by m.Len() steps; a missing parent or a longer chain
// (a cycle) fails with ErrDisconnectedChain. start == goal yields a
// single-node path of length 0.
func Reconstruct(m *roadgraph.Model, parents map[roadgraph.NodeID]roadgraph.NodeID, start, goal roadgraph.NodeID) (Path, error) {
	if m == nil {
		return Path{}, ErrNilModel
	}
	cur, err := m.Node(goal)
	if err != nil {
		return Path{}, fmt.Errorf("astar: reconstruct: %w", err)
	}

	nodes := []roadgraph.Node{cur}
	var sum float64
	for steps := 0; cur.ID != start; steps++ {
		if steps >= m.Len() {
			return Path{}, fmt.Errorf("%w: no start %d within %d steps from %d", ErrDisconnectedChain, start, m.Len(), goal)
		}
		pid, ok := parents[cur.ID]
		if !ok {
			return Path{}, fmt.Errorf("%w: node %d has no parent", ErrDisconnectedChain, cur.ID)
		}
		p, err := m.Node(pid)
		if err != nil {
			return Path{}, fmt.Errorf("%w: parent of %d: %v", ErrDisconnectedChain, cur.ID, err)
		}
		sum += cur.Distance(p.Point)
		nodes = append(nodes, p)
		cur = p
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Distance: sum * m.MetricScale()}, nil
}
