// Package nearest snaps an arbitrary normalized coordinate to the closest
// node of a road graph.
//
// Two finders share one contract:
//
//   - Linear scans every candidate node: O(N) per query, no build cost.
//   - KDTree is a 2-d tree over the same candidates: O(N log N) to build,
//     O(log N) expected per query.
//
// Contract (both finders):
//
//   - The result minimizes Euclidean distance to (x, y).
//   - Among equidistant nodes the lowest id wins, so results are deterministic.
//   - NaN or Inf coordinates fail with ErrInvalidCoordinate.
//   - A model without candidate nodes fails with ErrEmptyGraph.
//
// OnlyRoutable restricts candidates to nodes that belong to at least one way,
// so a query never snaps onto a node the search cannot leave.
package nearest
