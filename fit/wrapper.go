// Package: eqgraph/fit
//
// wrapper.go — ParameterWrapper, an adapter exposing external getter/setter
// access as a fit variable.

package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqgraph/clock"
	"github.com/katalvlaran/eqgraph/literals"
)

// Getter reads the wrapped quantity from its owner.
type Getter func() float64

// Setter writes the wrapped quantity back to its owner.
type Setter func(float64)

// ParameterWrapper adapts an externally owned scalar (a calculator
// attribute, a struct field) into a Par. Reads go through the getter on
// every Value call, so out-of-band changes by the owner are always visible;
// writes go through the setter and click the wrapper's clock.
//
// A constrained wrapper pushes each evaluated result through the setter, so
// the owner tracks the constraint.
type ParameterWrapper struct {
	name   string
	get    Getter
	set    Setter
	last   float64 // last value seen through the getter; guards the click
	lb, ub float64
	eq     literals.Literal
	clk    *clock.Clock
}

// NewParameterWrapper adapts the pair of accessors under name. Both
// accessors are required; a read-only or write-only quantity cannot be fit.
func NewParameterWrapper(name string, get Getter, set Setter) (*ParameterWrapper, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if get == nil || set == nil {
		return nil, fmt.Errorf("wrapper %q: %w", name, ErrBadAccessor)
	}
	return &ParameterWrapper{
		name: name,
		get:  get,
		set:  set,
		last: get(),
		lb:   math.Inf(-1),
		ub:   math.Inf(1),
		clk:  clock.New(),
	}, nil
}

// NewFieldWrapper adapts the entry fields[key] under name. The map is
// referenced, not copied.
func NewFieldWrapper(name string, fields map[string]float64, key string) (*ParameterWrapper, error) {
	if fields == nil {
		return nil, fmt.Errorf("wrapper %q: nil field map: %w", name, ErrBadAccessor)
	}
	return NewParameterWrapper(name,
		func() float64 { return fields[key] },
		func(x float64) { fields[key] = x },
	)
}

// Name returns the display name.
func (w *ParameterWrapper) Name() string { return w.name }

// Clock returns the clock owned by this wrapper.
func (w *ParameterWrapper) Clock() *clock.Clock { return w.clk }

// Const reports false: a wrapped quantity is mutable by construction.
func (w *ParameterWrapper) Const() bool { return false }

// Bounds returns the lower and upper bound.
func (w *ParameterWrapper) Bounds() (lb, ub float64) { return w.lb, w.ub }

// SetBounds replaces both bounds.
func (w *ParameterWrapper) SetBounds(lb, ub float64) error {
	if lb > ub {
		return fmt.Errorf("wrapper %q: [%v, %v]: %w", w.name, lb, ub, ErrBadBounds)
	}
	w.lb, w.ub = lb, ub
	return nil
}

// Constrained reports whether a constraint equation drives the value.
func (w *ParameterWrapper) Constrained() bool { return w.eq != nil }

// Value reads through the getter. A constrained wrapper first re-evaluates
// its equation and pushes the result to the owner.
func (w *ParameterWrapper) Value() (literals.Value, error) {
	if w.eq != nil {
		v, err := literals.Evaluate(w.eq)
		if err != nil {
			return literals.Value{}, fmt.Errorf("wrapper %q: %w", w.name, err)
		}
		w.push(v.Float())
		w.clk.Observe()
	} else if cur := w.get(); cur != w.last {
		// The owner changed the quantity out of band.
		w.last = cur
		w.clk.Click()
	}
	return literals.Scalar(w.get()), nil
}

// SetValue pushes a scalar through the setter. Vectors are rejected: a
// wrapper adapts exactly one external float.
func (w *ParameterWrapper) SetValue(v literals.Value) error {
	if w.eq != nil {
		return fmt.Errorf("wrapper %q: %w", w.name, ErrConstrainedParameter)
	}
	if v.IsVector() {
		return fmt.Errorf("wrapper %q: vector value: %w", w.name, literals.ErrShapeMismatch)
	}
	w.push(v.Float())
	return nil
}

// push writes x to the owner, clicking only on an actual change.
func (w *ParameterWrapper) push(x float64) {
	if w.get() == x {
		w.last = x
		return
	}
	w.set(x)
	w.last = x
	w.clk.Click()
}

// Identify dispatches to the visitor's leaf handler.
func (w *ParameterWrapper) Identify(v literals.Visitor) error {
	return v.OnArgument(w)
}

func (w *ParameterWrapper) bind(eq literals.Literal) {
	w.eq = eq
	w.clk.AddSubject(eq.Clock())
}

func (w *ParameterWrapper) unbind() {
	if w.eq == nil {
		return
	}
	if v, err := literals.Evaluate(w.eq); err == nil {
		w.push(v.Float())
	}
	w.clk.RemoveSubject(w.eq.Clock())
	w.eq = nil
}

func (w *ParameterWrapper) equation() literals.Literal { return w.eq }
