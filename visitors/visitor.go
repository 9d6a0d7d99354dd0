// Package: eqgraph/visitors
//
// visitor.go — the embeddable Base visitor and the package sentinel.

package visitors

import (
	"errors"

	"github.com/katalvlaran/eqgraph/literals"
)

// ErrUnimplemented indicates a traversal reached a node kind its visitor
// does not handle. Embed Base and override only the kinds you care about;
// reaching an unimplemented kind is then an explicit, checkable failure
// instead of a silent skip.
var ErrUnimplemented = errors.New("visitors: node kind not handled")

// Base is an embeddable default implementation of literals.Visitor whose
// every method fails with ErrUnimplemented.
type Base struct{}

// OnArgument fails with ErrUnimplemented unless overridden.
func (Base) OnArgument(literals.Arg) error { return ErrUnimplemented }

// OnOperator fails with ErrUnimplemented unless overridden.
func (Base) OnOperator(*literals.Operator) error { return ErrUnimplemented }

// OnGenerator fails with ErrUnimplemented unless overridden.
func (Base) OnGenerator(*literals.Generator) error { return ErrUnimplemented }
