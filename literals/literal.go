// Package: eqgraph/literals
//
// literal.go — the Literal interface, the leaf capability set (Arg), the
// Visitor capability set, and the top-level Evaluate dispatch.

package literals

import "github.com/katalvlaran/eqgraph/clock"

// Literal is any node of an equation graph. Identity is pointer identity:
// two Literals are the same node iff they are the same object, regardless of
// name or value.
type Literal interface {
	// Name returns the display name ("" for anonymous nodes such as
	// numeric constants).
	Name() string

	// Clock returns the logical clock owned by this node.
	Clock() *clock.Clock

	// Identify performs double dispatch: the node calls the Visitor method
	// matching its own kind. A Generator first runs its regeneration hook.
	Identify(v Visitor) error
}

// Arg is the leaf capability set: a Literal with a readable, writable value
// and a const flag. *Argument is the canonical implementation; the fit
// package layers Parameter, ParameterProxy and ParameterWrapper over the
// same surface so equations never distinguish plain leaves from adapted or
// aliased ones.
type Arg interface {
	Literal

	// Value returns the current value. Implementations may derive it
	// (a constrained parameter re-evaluates its constraint equation first),
	// which is why reading can fail.
	Value() (Value, error)

	// SetValue replaces the value, bumping the node clock when the value
	// actually changes. Fails with ErrConstArgument on a const leaf.
	SetValue(Value) error

	// Const reports whether the leaf rejects mutation.
	Const() bool
}

// Visitor is the traversal capability set over the closed union of node
// kinds. Concrete visitors live in package visitors; new traversals are new
// implementations of this interface, not new methods on nodes.
type Visitor interface {
	// OnArgument processes a leaf node.
	OnArgument(a Arg) error

	// OnOperator processes an interior node.
	OnOperator(o *Operator) error

	// OnGenerator processes a generator leaf, after its regeneration hook
	// has already run.
	OnGenerator(g *Generator) error
}

// Evaluate computes the current value of any Literal:
//   - an Operator returns its (possibly recomputed) cached result,
//   - a Generator runs its hook and evaluates the generated literal,
//   - any Arg returns its stored or derived value.
//
// Failures carry an *EvaluationError naming the closest failing node.
func Evaluate(l Literal) (Value, error) {
	switch t := l.(type) {
	case nil:
		return Value{}, ErrNilChild
	case *Operator:
		return t.Value()
	case *Generator:
		return t.Value()
	case Arg:
		return t.Value()
	default:
		return Value{}, evalErr(l.Name(), ErrNoValue)
	}
}
