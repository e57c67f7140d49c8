package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// Sentinel errors returned by Search and Reconstruct.
var (
	// ErrNilModel indicates a nil *roadgraph.Model.
	ErrNilModel = errors.New("astar: model is nil")

	// ErrExpansionLimit indicates the search expanded MaxExpansions nodes
	// without reaching a terminal state.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrDisconnectedChain indicates a parent chain that does not lead back to
	// the start within Len() steps. It means parent bookkeeping is broken.
	ErrDisconnectedChain = errors.New("astar: disconnected parent chain")

	// ErrBadMaxExpansions is the panic message of WithMaxExpansions for n ≤ 0.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// State is the lifecycle state of one search.
type State int

const (
	StateReady     State = iota // start and goal resolved, frontier empty
	StateSearching              // frontier non-empty, expanding
	StateFound                  // goal popped, path reconstructed
	StateExhausted              // frontier empty, goal unreachable
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateSearching:
		return "searching"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// TieBreak selects which of several frontier entries with equal f leaves first.
type TieBreak int

const (
	// TieInsertionOrder pops the entry pushed earliest.
	TieInsertionOrder TieBreak = iota
	// TieLowerID pops the entry with the lower node id, then the earliest.
	TieLowerID
)

// Path is a route in start→goal order.
type Path struct {
	Nodes    []roadgraph.Node
	Distance float64 // meters
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// IDs returns the node ids of the path in order.
func (p Path) IDs() []roadgraph.NodeID {
	ids := make([]roadgraph.NodeID, len(p.Nodes))
	for i, n := range p.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// Result is the outcome of Search.
//
// Path is set only when State == StateFound. Expanded counts nodes popped and
// processed (the goal included); Discovered counts nodes that received a g value.
type Result struct {
	State      State
	Path       Path
	Start      roadgraph.NodeID
	Goal       roadgraph.NodeID
	Expanded   int
	Discovered int
}

// Found reports whether a route was found.
func (r *Result) Found() bool { return r != nil && r.State == StateFound }

// Option configures Search.
type Option func(*Options)

// Options holds the Search configuration.
type Options struct {
	// Ctx is checked between pops; defaults to context.Background().
	Ctx context.Context

	// TieBreak orders frontier entries with equal f. Default TieInsertionOrder.
	TieBreak TieBreak

	// Relaxation enables lazy decrease-key on open nodes.
	Relaxation bool

	// OnExpand, if non-nil, is called with each non-goal node before its
	// neighbors are examined. A non-nil error aborts the search.
	OnExpand func(id roadgraph.NodeID) error

	// MaxExpansions bounds the number of expanded nodes; 0 means unlimited.
	MaxExpansions int
}

// DefaultOptions returns Background context, insertion-order ties,
// discovery-time finalization, no hook and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		TieBreak: TieInsertionOrder,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak sets the frontier tie-break rule.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithRelaxation re-parents open nodes when a strictly shorter g is found.
func WithRelaxation() Option {
	return func(o *Options) {
		o.Relaxation = true
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand(fn func(id roadgraph.NodeID) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxExpansions caps the number of expanded nodes. Panics if n ≤ 0.
func WithMaxExpansions(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}
