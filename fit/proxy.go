// Package: eqgraph/fit
//
// proxy.go — ParameterProxy, a renamed view over another Par.

package fit

import (
	"fmt"

	"github.com/katalvlaran/eqgraph/clock"
	"github.com/katalvlaran/eqgraph/literals"
)

// ParameterProxy presents another Par under a different name. All state
// lives in the target: the proxy shares its clock, value, bounds and
// constraint, so constraining either side constrains both. Only the display
// name differs, which is what the Printer renders.
type ParameterProxy struct {
	name string
	par  Par
}

// NewParameterProxy wraps par under name.
func NewParameterProxy(name string, par Par) (*ParameterProxy, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if par == nil {
		return nil, fmt.Errorf("proxy %q: %w", name, literals.ErrNilChild)
	}
	return &ParameterProxy{name: name, par: par}, nil
}

// Name returns the proxy's own display name.
func (p *ParameterProxy) Name() string { return p.name }

// Target returns the Par the proxy stands in for.
func (p *ParameterProxy) Target() Par { return p.par }

// Clock returns the target's clock; a proxy has no state of its own.
func (p *ParameterProxy) Clock() *clock.Clock { return p.par.Clock() }

// Value returns the target's value.
func (p *ParameterProxy) Value() (literals.Value, error) { return p.par.Value() }

// SetValue writes through to the target.
func (p *ParameterProxy) SetValue(v literals.Value) error { return p.par.SetValue(v) }

// Const reports the target's const flag.
func (p *ParameterProxy) Const() bool { return p.par.Const() }

// Bounds returns the target's bounds.
func (p *ParameterProxy) Bounds() (lb, ub float64) { return p.par.Bounds() }

// SetBounds writes through to the target.
func (p *ParameterProxy) SetBounds(lb, ub float64) error { return p.par.SetBounds(lb, ub) }

// Constrained reports whether the target is constrained.
func (p *ParameterProxy) Constrained() bool { return p.par.Constrained() }

// Identify dispatches the proxy itself, so traversals see the alias name.
func (p *ParameterProxy) Identify(v literals.Visitor) error {
	return v.OnArgument(p)
}

func (p *ParameterProxy) bind(eq literals.Literal)   { p.par.bind(eq) }
func (p *ParameterProxy) unbind()                    { p.par.unbind() }
func (p *ParameterProxy) equation() literals.Literal { return p.par.equation() }
