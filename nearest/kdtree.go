package nearest

import (
	"sort"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// KDTree is a static 2-d tree over the candidate nodes of a model.
//
// Layout: the tree is implicit in nodes. A subrange [lo, hi) is sorted on its
// split axis (X at even depth, Y at odd depth); its median mid = (lo+hi)/2 is
// the subtree root, [lo, mid) the left child and [mid+1, hi) the right child.
type KDTree struct {
	nodes []roadgraph.Node
}

// NewKDTree builds a k-d tree over m.
//
// Complexity: O(N log² N) build, O(N) memory.
func NewKDTree(m *roadgraph.Model, opts ...Option) (*KDTree, error) {
	if m == nil {
		return nil, ErrEmptyGraph
	}
	src := candidates(m, resolve(opts))
	if len(src) == 0 {
		return nil, ErrEmptyGraph
	}

	t := &KDTree{nodes: append([]roadgraph.Node(nil), src...)}
	t.build(0, len(t.nodes), true)

	return t, nil
}

// Len returns the number of indexed nodes.
func (t *KDTree) Len() int { return len(t.nodes) }

func (t *KDTree) build(lo, hi int, byX bool) {
	if hi-lo <= 1 {
		return
	}
	part := t.nodes[lo:hi]
	sort.Slice(part, func(i, j int) bool {
		if byX {
			return part[i].X < part[j].X
		}
		return part[i].Y < part[j].Y
	})
	mid := (lo + hi) / 2
	t.build(lo, mid, !byX)
	t.build(mid+1, hi, !byX)
}

// Closest implements Finder with the same tie-break as FindClosestNode.
func (t *KDTree) Closest(x, y float64) (roadgraph.Node, error) {
	if err := checkCoordinate(x, y); err != nil {
		return roadgraph.Node{}, err
	}

	s := search{q: roadgraph.Point{X: x, Y: y}, best: -1}
	s.visit(t.nodes, 0, len(t.nodes), true)

	return t.nodes[s.best], nil
}

// search holds the running best of one query.
type search struct {
	q     roadgraph.Point
	best  int
	bestD float64
}

func (s *search) visit(nodes []roadgraph.Node, lo, hi int, byX bool) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	n := nodes[mid]
	if d := n.DistanceSq(s.q); s.best < 0 || better(d, n.ID, s.bestD, nodes[s.best].ID) {
		s.best, s.bestD = mid, d
	}

	diff := s.q.Y - n.Y
	if byX {
		diff = s.q.X - n.X
	}
	nearLo, nearHi, farLo, farHi := lo, mid, mid+1, hi
	if diff > 0 {
		nearLo, nearHi, farLo, farHi = mid+1, hi, lo, mid
	}

	s.visit(nodes, nearLo, nearHi, !byX)
	// Equal distances must still be inspected for the lower-id tie-break.
	if diff*diff <= s.bestD {
		s.visit(nodes, farLo, farHi, !byX)
	}
}
