// Package lvroute plans shortest road routes over an in-memory street map.
//
// 🚀 What is lvroute?
//
//	A small routing stack that turns an OSM-style extract into answers:
//		• roadgraph: nodes, ways and lazily cached road neighbors
//		• nearest:   snap a query point to the closest map node (linear or k-d tree)
//		• astar:     A* search with a Euclidean heuristic and side-table parents
//		• planner:   query in [0,100] percent → start/goal → route in meters
//		• mapdata:   YAML/JSON extracts and gob snapshots
//		• wayfilter: CEL expressions choosing which ways are routable
//		• server:    JSON HTTP surface (gin)
//		• roadgen:   synthetic lines, squares and grids for tests and demos
//
// Quick ASCII example:
//
//	    1───2───3
//	        │
//	        4
//
//	way 1-2-3 and way 2-4 share node 2, so Neighbors(2) = [1 3 4].
//
// The lvroute command wires these packages together:
//
//	lvroute route  -m city.yaml 10 10 90 90
//	lvroute serve  -m city.yaml --addr :8080
//	lvroute snapshot city.yaml city.gob
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
