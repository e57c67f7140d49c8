package roadgraph

import (
	"fmt"
	"sort"
)

// Neighbors returns the ids of the nodes directly connected to id.
//
// Implementation:
//   - Stage 1: fast path under the read lock if id is already memoized.
//   - Stage 2: validate id (ErrNodeNotFound).
//   - Stage 3: for every occurrence of id in a way, take the predecessor
//     (skipped on one-way ways) and the successor.
//   - Stage 4: drop self references, de-duplicate, sort ascending.
//   - Stage 5: publish under the write lock; if a concurrent caller won the
//     race, its slice is returned so every caller observes the same value.
//
// The returned slice is shared with the cache; treat it as read-only.
// An isolated node yields an empty, non-nil slice.
//
// Complexity: O(k log k) on the first call for k occurrences, O(1) afterwards.
func (m *Model) Neighbors(id NodeID) ([]NodeID, error) {
	m.muNbr.RLock()
	cached, ok := m.neighbors[id]
	m.muNbr.RUnlock()
	if ok {
		return cached, nil
	}

	if !m.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	nbrs := m.expand(id)

	m.muNbr.Lock()
	defer m.muNbr.Unlock()
	if prev, ok := m.neighbors[id]; ok {
		return prev, nil
	}
	m.neighbors[id] = nbrs

	return nbrs, nil
}

// expand collects adjacency for id from its way occurrences. It reads only
// immutable model state and may run without locks.
func (m *Model) expand(id NodeID) []NodeID {
	occ := m.occurrences[id]
	seen := make(map[NodeID]struct{}, 2*len(occ))
	out := make([]NodeID, 0, 2*len(occ))

	add := func(n NodeID) {
		if n == id {
			return
		}
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	for _, o := range occ {
		w := m.ways[o.way]
		if o.pos > 0 && !w.OneWay {
			add(w.Nodes[o.pos-1])
		}
		if o.pos < len(w.Nodes)-1 {
			add(w.Nodes[o.pos+1])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// CachedNeighbors returns how many nodes have a memoized neighbor list.
func (m *Model) CachedNeighbors() int {
	m.muNbr.RLock()
	defer m.muNbr.RUnlock()

	return len(m.neighbors)
}
