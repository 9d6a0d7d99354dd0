// Package: eqgraph/fit
//
// constraint.go — Constraint: one parameter driven by an equation over
// others.

package fit

import (
	"fmt"

	"github.com/katalvlaran/eqgraph/clock"
	"github.com/katalvlaran/eqgraph/literals"
	"github.com/katalvlaran/eqgraph/visitors"
)

// Constraint records that par's value is derived from eq. While attached,
// direct writes to par fail; reads re-evaluate eq. The value assignment
// itself lives in the parameter (see Parameter.Value); the Constraint is
// the handle used to release it.
type Constraint struct {
	par Par
	eq  literals.Literal
}

// Constrain attaches eq to par and verifies the pairing by forcing one
// evaluation. It fails with ErrConstraintConflict when par is const,
// already constrained, or reachable from eq through other constraints
// (a constraint cycle would recurse forever at read time). A failed
// verification rolls the attachment back.
func Constrain(par Par, eq literals.Literal) (*Constraint, error) {
	// 1. Degenerate inputs.
	if par == nil {
		return nil, literals.ErrNilChild
	}
	if eq == nil {
		return nil, fmt.Errorf("parameter %q: %w", par.Name(), literals.ErrNilChild)
	}

	// 2. Conflicts.
	if par.Const() {
		return nil, fmt.Errorf("parameter %q is const: %w", par.Name(), ErrConstraintConflict)
	}
	if par.Constrained() {
		return nil, fmt.Errorf("parameter %q is already constrained: %w", par.Name(), ErrConstraintConflict)
	}
	cyclic, err := wouldCycle(eq, par)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", par.Name(), err)
	}
	if cyclic {
		return nil, fmt.Errorf("parameter %q: constraint cycle: %w", par.Name(), ErrConstraintConflict)
	}

	// 3. Attach, then verify with one forced evaluation.
	par.bind(eq)
	if _, err = par.Value(); err != nil {
		par.unbind()
		return nil, fmt.Errorf("parameter %q: %w", par.Name(), err)
	}
	return &Constraint{par: par, eq: eq}, nil
}

// Par returns the constrained parameter.
func (c *Constraint) Par() Par { return c.par }

// Equation returns the driving equation.
func (c *Constraint) Equation() literals.Literal { return c.eq }

// Release detaches the constraint. The parameter keeps the equation's final
// value and becomes writable again.
func (c *Constraint) Release() {
	c.par.unbind()
}

// wouldCycle reports whether par is reachable from eq, expanding through
// the equations of constrained parameters along the way. Identity is clock
// identity, so a proxy and its target count as one variable.
func wouldCycle(eq literals.Literal, par Par) (bool, error) {
	seen := make(map[*clock.Clock]bool)
	stack := []literals.Literal{eq}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		args, err := visitors.Args(cur, true)
		if err != nil {
			return false, err
		}
		for _, a := range args {
			if a.Clock() == par.Clock() {
				return true, nil
			}
			if p, ok := a.(Par); ok && p.Constrained() && !seen[p.Clock()] {
				seen[p.Clock()] = true
				stack = append(stack, p.equation())
			}
		}
	}
	return false, nil
}
