// Package: eqgraph/literals
//
// errors.go — sentinel errors and the EvaluationError wrapper.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Context is attached with %w wrapping, never baked into the sentinel.
//   - Invariant violations fail at the mutating call, never at evaluation
//     time; evaluation-time numeric failures arrive as *EvaluationError.

package literals

import (
	"errors"
	"fmt"
)

var (
	// ErrConstArgument indicates an attempt to mutate the value of an
	// Argument flagged const. The const invariant is enforced by rejecting
	// mutation, not by physical immutability.
	// Usage: if errors.Is(err, ErrConstArgument) { /* pick another leaf */ }.
	ErrConstArgument = errors.New("literals: argument is const")

	// ErrShapeMismatch indicates element-wise arithmetic over two vectors of
	// different lengths. Scalar-vector broadcasting never triggers this.
	ErrShapeMismatch = errors.New("literals: value shape mismatch")

	// ErrNilChild indicates an Operator (or a Generator's literal slot)
	// references a nil node where a child is required.
	ErrNilChild = errors.New("literals: nil child node")

	// ErrDuplicateKeyword indicates a keyword child name was added twice to
	// the same Operator. Keyword names are unique among keyword children.
	ErrDuplicateKeyword = errors.New("literals: duplicate keyword child")

	// ErrArity indicates an evaluation function received a number of
	// positional arguments different from what it requires.
	ErrArity = errors.New("literals: wrong number of arguments")

	// ErrNoSuchChild indicates a child-slot reference (positional index or
	// keyword name) that does not exist on the Operator.
	ErrNoSuchChild = errors.New("literals: no such child slot")

	// ErrNoValue indicates Evaluate was handed a Literal kind that cannot
	// produce a value (a foreign Literal implementation outside the
	// Argument/Operator/Generator/Arg union).
	ErrNoValue = errors.New("literals: node cannot produce a value")
)

// EvaluationError tags an evaluation-time failure with the display name of
// the node whose function (or child) failed. It wraps the underlying cause,
// so errors.Is still matches sentinels such as ErrShapeMismatch.
type EvaluationError struct {
	// Node is the display name of the failing node ("" renders as "<anon>").
	Node string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	name := e.Node
	if name == "" {
		name = "<anon>"
	}
	return fmt.Sprintf("literals: evaluating %q: %v", name, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// evalErr wraps err as an *EvaluationError for the named node, unless it
// already is one (the innermost failing node wins the tag).
func evalErr(node string, err error) error {
	var ee *EvaluationError
	if errors.As(err, &ee) {
		return err
	}
	return &EvaluationError{Node: node, Err: err}
}
