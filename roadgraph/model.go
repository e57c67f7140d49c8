package roadgraph

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// occurrence locates one appearance of a node inside a way.
type occurrence struct {
	way int // index into Model.ways
	pos int // position inside Way.Nodes
}

// Model is the road graph of one map extract.
//
// nodes is sorted by ID asc and index maps ID → position in nodes.
// occurrences maps a node ID to every (way, position) it appears at.
// muNbr guards the lazily populated neighbors cache.
type Model struct {
	nodes       []Node
	index       map[NodeID]int
	ways        []Way
	occurrences map[NodeID][]occurrence
	bounds      Bounds
	scale       float64

	muNbr     sync.RWMutex
	neighbors map[NodeID][]NodeID
}

// Build constructs a Model from provider data.
//
// Validation (in order):
//  1. at least one node;
//  2. unique node ids with finite coordinates;
//  3. at least one way, and at least one left after WayFilter;
//  4. every way member references a known node;
//  5. a positive metric scale, either overridden or derived from Bounds.
//
// Every failure wraps ErrMalformedMapData.
func Build(data ProviderData, opts ...Option) (*Model, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrMalformedMapData)
	}
	if len(data.Ways) == 0 {
		return nil, fmt.Errorf("%w: no ways", ErrMalformedMapData)
	}

	m := &Model{
		nodes:       make([]Node, 0, len(data.Nodes)),
		index:       make(map[NodeID]int, len(data.Nodes)),
		occurrences: make(map[NodeID][]occurrence),
		bounds:      data.Bounds,
		neighbors:   make(map[NodeID][]NodeID),
	}

	// 1) Node table, sorted by id so scans and ties are deterministic.
	for _, rn := range data.Nodes {
		if !finite(rn.X) || !finite(rn.Y) {
			return nil, fmt.Errorf("%w: node %d has non-finite coordinate (%v, %v)", ErrMalformedMapData, rn.ID, rn.X, rn.Y)
		}
		m.nodes = append(m.nodes, Node{ID: rn.ID, Point: Point{X: rn.X, Y: rn.Y}})
	}
	sort.Slice(m.nodes, func(i, j int) bool { return m.nodes[i].ID < m.nodes[j].ID })
	for i, n := range m.nodes {
		if i > 0 && m.nodes[i-1].ID == n.ID {
			return nil, fmt.Errorf("%w: duplicate node id %d", ErrMalformedMapData, n.ID)
		}
		m.index[n.ID] = i
	}

	// 2) Way table and node → occurrence index.
	for _, rw := range data.Ways {
		if cfg.WayFilter != nil && !cfg.WayFilter(rw) {
			continue
		}
		members := make([]NodeID, len(rw.Nodes))
		for pos, id := range rw.Nodes {
			if _, ok := m.index[id]; !ok {
				return nil, fmt.Errorf("%w: way %d references unknown node %d", ErrMalformedMapData, rw.ID, id)
			}
			members[pos] = id
		}
		wi := len(m.ways)
		m.ways = append(m.ways, Way{ID: rw.ID, Nodes: members, OneWay: rw.OneWay, Kind: rw.Kind})
		for pos, id := range members {
			m.occurrences[id] = append(m.occurrences[id], occurrence{way: wi, pos: pos})
		}
	}
	if len(m.ways) == 0 {
		return nil, fmt.Errorf("%w: no routable ways", ErrMalformedMapData)
	}

	// 3) Metric scale, fixed for the model's lifetime.
	if cfg.MetricScale > 0 {
		m.scale = cfg.MetricScale
	} else {
		scale, err := ScaleFromBounds(data.Bounds)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMapData, err)
		}
		m.scale = scale
	}

	return m, nil
}

// Node returns the node with the given id, or ErrNodeNotFound.
func (m *Model) Node(id NodeID) (Node, error) {
	i, ok := m.index[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return m.nodes[i], nil
}

// HasNode reports whether id belongs to the model.
func (m *Model) HasNode(id NodeID) bool {
	_, ok := m.index[id]

	return ok
}

// Nodes returns all nodes sorted by ID ascending.
// The slice is shared with the model; treat it as read-only.
func (m *Model) Nodes() []Node { return m.nodes }

// Ways returns all routable ways in provider order; treat as read-only.
func (m *Model) Ways() []Way { return m.ways }

// WaysOf returns the ids of the ways referencing node id, in provider order,
// once per way even if the node occurs several times in it.
func (m *Model) WaysOf(id NodeID) []WayID {
	occ := m.occurrences[id]
	out := make([]WayID, 0, len(occ))
	last := -1
	for _, o := range occ {
		if o.way == last {
			continue
		}
		last = o.way
		out = append(out, m.ways[o.way].ID)
	}

	return out
}

// OnRoad reports whether node id is a member of at least one way.
func (m *Model) OnRoad(id NodeID) bool {
	return len(m.occurrences[id]) > 0
}

// Len returns the number of nodes.
func (m *Model) Len() int { return len(m.nodes) }

// WayCount returns the number of routable ways.
func (m *Model) WayCount() int { return len(m.ways) }

// Bounds returns the declared bounding box of the extract.
func (m *Model) Bounds() Bounds { return m.bounds }

// MetricScale returns the factor converting normalized distance to meters.
func (m *Model) MetricScale() float64 { return m.scale }

// Distance returns the normalized Euclidean distance between two nodes.
func (m *Model) Distance(a, b NodeID) (float64, error) {
	na, err := m.Node(a)
	if err != nil {
		return 0, err
	}
	nb, err := m.Node(b)
	if err != nil {
		return 0, err
	}

	return na.Distance(nb.Point), nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
