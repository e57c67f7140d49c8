package nearest

import (
	"errors"

	"github.com/katalvlaran/lvroute/roadgraph"
)

var (
	// ErrEmptyGraph indicates a nil model or one without candidate nodes.
	ErrEmptyGraph = errors.New("nearest: no candidate nodes")

	// ErrInvalidCoordinate indicates a NaN or infinite query coordinate.
	ErrInvalidCoordinate = errors.New("nearest: coordinate is not finite")
)

// Finder resolves a normalized coordinate to its closest node.
type Finder interface {
	Closest(x, y float64) (roadgraph.Node, error)
}

// Options configures candidate selection.
type Options struct {
	// OnlyRoutable skips nodes that are not a member of any way.
	OnlyRoutable bool
}

// Option is a functional option for finders.
type Option func(*Options)

// OnlyRoutable limits candidates to nodes referenced by at least one way.
func OnlyRoutable() Option {
	return func(o *Options) {
		o.OnlyRoutable = true
	}
}

// DefaultOptions considers every node of the model.
func DefaultOptions() Options {
	return Options{}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// candidates returns the nodes eligible under o, sorted by id.
func candidates(m *roadgraph.Model, o Options) []roadgraph.Node {
	all := m.Nodes()
	if !o.OnlyRoutable {
		return all
	}
	out := make([]roadgraph.Node, 0, len(all))
	for _, n := range all {
		if m.OnRoad(n.ID) {
			out = append(out, n)
		}
	}

	return out
}

// better reports whether a candidate at squared distance d with id beats the
// current best. Lower distance wins; equal distance falls back to lower id.
func better(d float64, id roadgraph.NodeID, bestD float64, bestID roadgraph.NodeID) bool {
	return d < bestD || (d == bestD && id < bestID)
}
