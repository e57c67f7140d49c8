package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/roadgen"
	"github.com/katalvlaran/lvroute/roadgraph"
)

// ExampleSearch routes across a unit square whose side is 10 meters.
func ExampleSearch() {
	data := roadgen.MustGenerate(nil, roadgen.Square(1))
	m, err := roadgraph.Build(data, roadgraph.WithMetricScale(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.Search(m, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.State, res.Path.IDs(), res.Path.Distance)
	// Output: found [1 2 3] 20
}
