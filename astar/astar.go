package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// Search runs A* on m from start to goal.
//
// Validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. start and goal must exist (roadgraph.ErrNodeNotFound).
//
// Returns a Result in StateFound or StateExhausted, or an error when the search
// was aborted (context, hook, expansion limit, broken model).
func Search(m *roadgraph.Model, start, goal roadgraph.NodeID, opts ...Option) (*Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any state is created.
	if m == nil {
		return nil, ErrNilModel
	}
	startNode, err := m.Node(start)
	if err != nil {
		return nil, fmt.Errorf("astar: start: %w", err)
	}
	goalNode, err := m.Node(goal)
	if err != nil {
		return nil, fmt.Errorf("astar: goal: %w", err)
	}

	// 3) Ready: side tables exist, frontier is empty.
	r := &runner{
		m:       m,
		options: cfg,
		goal:    goalNode,
		g:       make(map[roadgraph.NodeID]float64),
		parent:  make(map[roadgraph.NodeID]roadgraph.NodeID),
		visited: make(map[roadgraph.NodeID]bool),
		closed:  make(map[roadgraph.NodeID]bool),
		pq:      frontier{tie: cfg.TieBreak},
		res:     &Result{State: StateReady, Start: start, Goal: goal},
	}

	// 4) Searching.
	r.init(startNode)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of one search.
type runner struct {
	m       *roadgraph.Model
	options Options
	goal    roadgraph.Node
	g       map[roadgraph.NodeID]float64          // best known cost from start
	parent  map[roadgraph.NodeID]roadgraph.NodeID // predecessor on that path
	visited map[roadgraph.NodeID]bool             // discovered (has g and parent)
	closed  map[roadgraph.NodeID]bool             // popped and expanded
	pq      frontier
	seq     uint64
	res     *Result
}

// init discovers the start node and pushes it.
func (r *runner) init(start roadgraph.Node) {
	r.g[start.ID] = 0
	r.visited[start.ID] = true
	r.res.Discovered = 1
	r.push(start.ID, 0, r.heuristic(start))
	r.res.State = StateSearching
}

// heuristic is the straight-line distance to the goal.
func (r *runner) heuristic(n roadgraph.Node) float64 {
	return n.Distance(r.goal.Point)
}

func (r *runner) push(id roadgraph.NodeID, g, h float64) {
	heap.Push(&r.pq, &entry{id: id, g: g, f: g + h, seq: r.seq})
	r.seq++
}

// process pops entries until the goal is reached or the frontier drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Cancellation is honored between pops only.
		if err := r.options.Ctx.Err(); err != nil {
			return fmt.Errorf("astar: %w", err)
		}

		// 2) Pop the minimum f; drop entries superseded by a relaxation.
		e := heap.Pop(&r.pq).(*entry)
		if r.closed[e.id] || e.g > r.g[e.id] {
			continue
		}
		r.closed[e.id] = true
		r.res.Expanded++

		// 3) Goal test by identity.
		if e.id == r.goal.ID {
			path, err := Reconstruct(r.m, r.parent, r.res.Start, r.goal.ID)
			if err != nil {
				return err
			}
			r.res.Path = path
			r.res.State = StateFound

			return nil
		}

		// 4) Budget and hook.
		if r.options.MaxExpansions > 0 && r.res.Expanded > r.options.MaxExpansions {
			return fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}
		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(e.id); err != nil {
				return err
			}
		}

		// 5) Expand.
		if err := r.expand(e.id); err != nil {
			return err
		}
	}

	r.res.State = StateExhausted

	return nil
}

// expand discovers the neighbors of u.
func (r *runner) expand(u roadgraph.NodeID) error {
	nbrs, err := r.m.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %d: %w", u, err)
	}
	from, err := r.m.Node(u)
	if err != nil {
		return fmt.Errorf("astar: %w", err)
	}

	for _, v := range nbrs {
		if r.closed[v] {
			continue
		}
		to, err := r.m.Node(v)
		if err != nil {
			return fmt.Errorf("astar: neighbor of %d: %w", u, err)
		}
		g := r.g[u] + from.Distance(to.Point)

		if r.visited[v] {
			// Open node: only relaxation may improve it, and only strictly.
			if !r.options.Relaxation || g >= r.g[v] {
				continue
			}
		} else {
			r.visited[v] = true
			r.res.Discovered++
		}
		r.g[v] = g
		r.parent[v] = u
		r.push(v, g, r.heuristic(to))
	}

	return nil
}

// entry is one frontier item. seq is the global push order.
type entry struct {
	id  roadgraph.NodeID
	g   float64
	f   float64
	seq uint64
}

// frontier is a min-heap of *entry ordered by f, then by the tie rule.
// Superseded entries stay in the heap and are skipped when popped.
type frontier struct {
	items []*entry
	tie   TieBreak
}

func (pq frontier) Len() int { return len(pq.items) }

func (pq frontier) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if pq.tie == TieLowerID && a.id != b.id {
		return a.id < b.id
	}

	return a.seq < b.seq
}

func (pq frontier) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *frontier) Push(x interface{}) { pq.items = append(pq.items, x.(*entry)) }

func (pq *frontier) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}
