// Package astar finds a route between two nodes of a roadgraph.Model with the
// A* algorithm and reconstructs it as an ordered node list with a length in
// meters.
//
// State machine:
//
//	Ready ──push start──▶ Searching ──pop goal──▶ Found
//	                          │
//	                          └──frontier empty──▶ Exhausted
//
// Exhausted is the "no route exists" outcome. It is reported through
// Result.State with a nil error, because disconnected road networks are normal.
//
// Costs:
//
//   - g: cumulative Euclidean edge length in normalized coordinates.
//   - h: straight-line distance to the goal in normalized coordinates.
//   - Conversion to meters happens once, in Reconstruct, via MetricScale.
//
// Finalization:
//
//	By default a node is marked visited when it is first discovered and its
//	parent never changes afterwards. Each node enters the frontier at most
//	once, which keeps the search cheap but may return a slightly longer route
//	when a better parent is found later. WithRelaxation switches to classic
//	A*: nodes are closed when popped, and a strictly shorter g re-parents an
//	open node (lazy decrease-key), which yields an optimal route.
//
// Tie-break:
//
//	Frontier entries with equal f = g+h leave in insertion order by default
//	(TieInsertionOrder). TieLowerID pops the lower node id first instead.
//	Either way the outcome is deterministic for a given model and query.
//
// State:
//
//	All per-search state (g, h, parent, visited) lives in maps owned by one
//	Search call. The model is never written to except through its own
//	neighbor cache, so any number of searches may run on one model, in
//	sequence or concurrently, with no reset step.
//
// Errors:
//
//   - ErrNilModel:          nil model.
//   - roadgraph.ErrNodeNotFound: start or goal is not in the model.
//   - ErrExpansionLimit:    WithMaxExpansions budget exhausted.
//   - ErrDisconnectedChain: parent chain broken or cyclic during Reconstruct.
//   - context errors:       WithContext was cancelled between pops.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary heap frontier.
//   - Space: O(V) for side tables, O(V) frontier (O(E) with relaxation).
package astar
