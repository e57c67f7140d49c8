// Package mapdata loads road-network extracts and turns them into the
// provider data consumed by roadgraph.Build.
//
// Extract documents are YAML (JSON is accepted as well):
//
//	bounds: {minlat: 52.50, maxlat: 52.52, minlon: 13.40, maxlon: 13.43}
//	nodes:
//	  - {id: 1, lat: 52.501, lon: 13.401}
//	ways:
//	  - id: 10
//	    nodes: [1, 2, 3]
//	    tags: {highway: residential, oneway: "yes"}
//
// Nodes are projected with Web Mercator, shifted so the south-west corner of
// the bounds is the origin and divided by the metric scale of the bounds.
// When bounds are omitted they are taken from the node extremes.
//
// Ways honor the OSM oneway tag: yes, true and 1 keep member order, -1
// reverses it. Roundabouts are one-way unless tagged otherwise.
//
// Snapshots are gob-encoded provider data for fast reloads; LoadAny picks the
// decoder by file extension.
package mapdata
