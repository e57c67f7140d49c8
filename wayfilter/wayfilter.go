// Package wayfilter decides which provider ways are routable, using CEL
// expressions over a way's attributes.
//
// Variables available to an expression:
//
//	highway string             raw highway tag, or the kind name when untagged
//	kind    string             normalized road kind (see roadgraph.RoadKind)
//	oneway  bool               one-way flag
//	id      int                way id
//	nodes   int                number of member nodes
//	tags    map(string,string) all provider tags
//
// Example: `kind in ["motorway", "trunk", "primary"] || tags["access"] == "yes"`.
//
// A compiled Filter is immutable and safe for concurrent use.
package wayfilter

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/lvroute/roadgraph"
)

// Default keeps every way whose kind is not footway, so path, steps and
// pedestrian tags are dropped too.
const Default = `kind != "footway"`

var (
	// ErrCompile indicates an expression that does not parse or type-check.
	ErrCompile = errors.New("wayfilter: compile failed")

	// ErrNotBoolean indicates an expression whose result type is not bool.
	ErrNotBoolean = errors.New("wayfilter: expression must evaluate to bool")

	// ErrEval indicates a runtime evaluation failure, e.g. a missing map key.
	ErrEval = errors.New("wayfilter: evaluation failed")
)

// Filter is a compiled way predicate.
type Filter struct {
	expr string
	prg  cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("highway", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("oneway", cel.BoolType),
		cel.Variable("id", cel.IntType),
		cel.Variable("nodes", cel.IntType),
		cel.Variable("tags", cel.MapType(cel.StringType, cel.StringType)),
	)
}

// Compile parses and type-checks expr.
func Compile(expr string) (*Filter, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("wayfilter: environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: %q has type %v", ErrNotBoolean, expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	return &Filter{expr: expr, prg: prg}, nil
}

// MustCompile is Compile for expressions known to be valid; it panics on error.
func MustCompile(expr string) *Filter {
	f, err := Compile(expr)
	if err != nil {
		panic(err)
	}

	return f
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match evaluates the filter against w.
func (f *Filter) Match(w roadgraph.RawWay) (bool, error) {
	out, _, err := f.prg.Eval(activation(w))
	if err != nil {
		return false, fmt.Errorf("%w: way %d: %v", ErrEval, w.ID, err)
	}
	keep, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: way %d: got %T", ErrNotBoolean, w.ID, out.Value())
	}

	return keep, nil
}

// Predicate adapts f for roadgraph.WithWayFilter. Ways whose evaluation
// fails are excluded.
func (f *Filter) Predicate() func(roadgraph.RawWay) bool {
	return func(w roadgraph.RawWay) bool {
		keep, err := f.Match(w)
		return err == nil && keep
	}
}

func activation(w roadgraph.RawWay) map[string]any {
	tags := w.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	highway, ok := tags["highway"]
	if !ok {
		highway = w.Kind.String()
	}

	return map[string]any{
		"highway": highway,
		"kind":    w.Kind.String(),
		"oneway":  w.OneWay,
		"id":      int64(w.ID),
		"nodes":   int64(len(w.Nodes)),
		"tags":    tags,
	}
}
