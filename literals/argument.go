// Package: eqgraph/literals
//
// argument.go — Argument, the plain leaf node: a named mutable value with a
// const flag.

package literals

import "github.com/katalvlaran/eqgraph/clock"

// Argument is a leaf node holding a scalar or vector Value. Arguments are
// the only place state enters an equation graph; every interior result is
// derived from them.
//
// An Argument flagged const keeps its construction-time value forever: the
// invariant is enforced by SetValue rejecting mutation, not by freezing the
// underlying storage.
type Argument struct {
	name  string
	value Value
	konst bool
	clk   *clock.Clock
}

// NewArgument constructs a leaf with the given display name and initial
// value. Anonymous leaves (name "") are legal and print as their value.
func NewArgument(name string, value Value, konst bool) *Argument {
	return &Argument{
		name:  name,
		value: value,
		konst: konst,
		clk:   clock.New(),
	}
}

// Name returns the display name ("" for anonymous constants).
func (a *Argument) Name() string { return a.name }

// Clock returns the clock owned by this leaf.
func (a *Argument) Clock() *clock.Clock { return a.clk }

// Const reports whether the leaf rejects mutation.
func (a *Argument) Const() bool { return a.konst }

// Value returns the stored value. The error is always nil for a plain
// Argument; the signature matches the Arg capability set, where derived
// leaves can fail.
func (a *Argument) Value() (Value, error) {
	return a.value, nil
}

// SetValue stores v and clicks the clock, invalidating every cached result
// downstream. Setting the identical value is a no-op (no click), so
// optimizers that rewrite unchanged coordinates do not defeat the cache.
// Fails with ErrConstArgument on a const leaf.
func (a *Argument) SetValue(v Value) error {
	if a.konst {
		return ErrConstArgument
	}
	if a.value.Equal(v) {
		return nil
	}
	a.value = v
	a.clk.Click()
	return nil
}

// Identify dispatches to the visitor's leaf handler.
func (a *Argument) Identify(v Visitor) error {
	return v.OnArgument(a)
}
