// Package: eqgraph/fit
//
// parameter.go — the Par capability set and Parameter, the plain fit
// variable.

package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqgraph/clock"
	"github.com/katalvlaran/eqgraph/literals"
)

// Par is the capability set of a fit variable: a graph leaf with bounds and
// constraint state. The unexported methods keep the implementation set
// closed to this package; external leaf types join graphs through
// ParameterWrapper instead.
//
// Par identity for constraint bookkeeping is clock identity: a proxy and
// its target share one clock and are the same variable.
type Par interface {
	literals.Arg

	// Bounds returns the lower and upper bound (±Inf when unbounded).
	Bounds() (lb, ub float64)

	// SetBounds replaces both bounds. Fails with ErrBadBounds when lb > ub.
	SetBounds(lb, ub float64) error

	// Constrained reports whether a constraint equation currently drives
	// the value.
	Constrained() bool

	bind(eq literals.Literal)
	unbind()
	equation() literals.Literal
}

// Parameter is a plain fit variable. Reading a constrained Parameter
// re-evaluates its constraint equation and stores the result; the stored
// value survives the constraint's release.
type Parameter struct {
	name   string
	value  literals.Value
	konst  bool
	lb, ub float64
	eq     literals.Literal
	clk    *clock.Clock
}

// ParameterOption configures a Parameter at construction.
type ParameterOption func(*Parameter)

// WithConst marks the parameter const: SetValue fails and constraints
// refuse it.
func WithConst() ParameterOption {
	return func(p *Parameter) { p.konst = true }
}

// WithBounds sets the initial bounds. lb must not exceed ub; use SetBounds
// for checked updates.
func WithBounds(lb, ub float64) ParameterOption {
	return func(p *Parameter) { p.lb, p.ub = lb, ub }
}

// NewParameter constructs an unbounded, mutable parameter holding value.
func NewParameter(name string, value literals.Value, opts ...ParameterOption) *Parameter {
	p := &Parameter{
		name:  name,
		value: value,
		lb:    math.Inf(-1),
		ub:    math.Inf(1),
		clk:   clock.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the display name.
func (p *Parameter) Name() string { return p.name }

// Clock returns the clock owned by this parameter.
func (p *Parameter) Clock() *clock.Clock { return p.clk }

// Const reports whether the parameter rejects mutation.
func (p *Parameter) Const() bool { return p.konst }

// SetConst toggles the const flag. Releasing const does not touch the
// value; flagging const freezes whatever is currently stored.
func (p *Parameter) SetConst(konst bool) { p.konst = konst }

// Bounds returns the lower and upper bound.
func (p *Parameter) Bounds() (lb, ub float64) { return p.lb, p.ub }

// SetBounds replaces both bounds.
func (p *Parameter) SetBounds(lb, ub float64) error {
	if lb > ub {
		return fmt.Errorf("parameter %q: [%v, %v]: %w", p.name, lb, ub, ErrBadBounds)
	}
	p.lb, p.ub = lb, ub
	return nil
}

// Constrained reports whether a constraint equation drives the value.
func (p *Parameter) Constrained() bool { return p.eq != nil }

// Value returns the current value. A constrained parameter first
// re-evaluates its equation: a changed result is stored with a fresh stamp,
// an unchanged one only absorbs the equation's progress, so downstream
// caches are not invalidated for nothing.
func (p *Parameter) Value() (literals.Value, error) {
	if p.eq != nil {
		v, err := literals.Evaluate(p.eq)
		if err != nil {
			return literals.Value{}, fmt.Errorf("parameter %q: %w", p.name, err)
		}
		if !p.value.Equal(v) {
			p.value = v
			p.clk.Click()
		} else {
			p.clk.Observe()
		}
	}
	return p.value, nil
}

// SetValue stores v. Fails with literals.ErrConstArgument on a const
// parameter and ErrConstrainedParameter while a constraint is attached.
// Storing an equal value is a no-op without a click.
func (p *Parameter) SetValue(v literals.Value) error {
	if p.konst {
		return fmt.Errorf("parameter %q: %w", p.name, literals.ErrConstArgument)
	}
	if p.eq != nil {
		return fmt.Errorf("parameter %q: %w", p.name, ErrConstrainedParameter)
	}
	if p.value.Equal(v) {
		return nil
	}
	p.value = v
	p.clk.Click()
	return nil
}

// Identify dispatches to the visitor's leaf handler.
func (p *Parameter) Identify(v literals.Visitor) error {
	return v.OnArgument(p)
}

func (p *Parameter) bind(eq literals.Literal) {
	p.eq = eq
	p.clk.AddSubject(eq.Clock())
}

// unbind evaluates the equation one last time so the parameter keeps its
// final constrained value, then detaches.
func (p *Parameter) unbind() {
	if p.eq == nil {
		return
	}
	if v, err := literals.Evaluate(p.eq); err == nil && !p.value.Equal(v) {
		p.value = v
		p.clk.Click()
	}
	p.clk.RemoveSubject(p.eq.Clock())
	p.eq = nil
}

func (p *Parameter) equation() literals.Literal { return p.eq }
