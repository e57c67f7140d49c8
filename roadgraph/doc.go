// Package roadgraph turns map-provider entities (nodes and ways) into a
// searchable road graph.
//
// What:
//
//   - Model owns every road node and road way of one map extract.
//   - Nodes carry a coordinate normalized to the extract's bounding box:
//     the origin is its south-west corner and its shorter side spans [0,1].
//   - Ways are ordered node sequences; consecutive members are adjacent.
//   - MetricScale converts a normalized distance into meters. It is derived
//     once from the declared bounding box with a Web Mercator projection.
//
// Neighbors:
//
//	Adjacency is not materialized up front. The first Neighbors(id) call for a
//	node walks the ways that reference it, collects the predecessor (unless
//	the way is one-way) and the successor of every occurrence, and memoizes
//	the sorted, de-duplicated result. Later calls are a map lookup.
//
//	    A───B───C        way 1: A,B,C
//	        │
//	        D            way 2: B,D
//
//	    Neighbors(B) = [A, C, D]
//
// Concurrency:
//
//   - A built Model is structurally immutable.
//   - The neighbor cache is guarded by a sync.RWMutex, so Neighbors may be
//     called from several goroutines.
//   - Search scratch state (cost-so-far, parents, visited flags) never lives
//     on the Model; see package astar.
//
// Errors:
//
//   - ErrMalformedMapData: unusable provider input; Build fails.
//   - ErrNodeNotFound:     lookup of an id that is not part of the model.
//
// Complexity:
//
//   - Build:     O(N log N + W) for N nodes and W way members.
//   - Node:      O(1).
//   - Neighbors: O(k) on first call for a node with k way occurrences, O(1) after.
package roadgraph
