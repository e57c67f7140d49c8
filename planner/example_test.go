package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadgen"
	"github.com/katalvlaran/lvroute/roadgraph"
)

func ExamplePlanner_Plan() {
	m, _ := roadgraph.Build(roadgen.MustGenerate(nil, roadgen.Square(1)), roadgraph.WithMetricScale(10))
	p, _ := planner.New(m)

	route, err := p.Plan(context.Background(), planner.Query{StartX: 0, StartY: 0, EndX: 100, EndY: 100})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route.Found, route.Path.IDs(), route.DistanceMeters)
	// Output: true [1 2 3] 20
}
