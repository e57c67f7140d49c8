package roadgen

import "github.com/katalvlaran/lvroute/roadgraph"

// draft accumulates provider entities across constructors.
type draft struct {
	nodes    []roadgraph.RawNode
	ways     []roadgraph.RawWay
	nextNode roadgraph.NodeID
	nextWay  roadgraph.WayID
}

func newDraft() *draft {
	return &draft{nextNode: 1, nextWay: 1}
}

func (d *draft) addNode(x, y float64) roadgraph.NodeID {
	id := d.nextNode
	d.nextNode++
	d.nodes = append(d.nodes, roadgraph.RawNode{ID: id, X: x, Y: y})

	return id
}

func (d *draft) addWay(kind roadgraph.RoadKind, oneWay bool, members ...roadgraph.NodeID) roadgraph.WayID {
	id := d.nextWay
	d.nextWay++
	d.ways = append(d.ways, roadgraph.RawWay{
		ID:     id,
		Nodes:  append([]roadgraph.NodeID(nil), members...),
		OneWay: oneWay,
		Kind:   kind,
		Tags:   map[string]string{"highway": kind.String()},
	})

	return id
}
