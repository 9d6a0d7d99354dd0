// Package: eqgraph/fit
//
// organizer.go — Organizer, the owner of one fitting session's parameters,
// constraints, restraints and equation registry.

package fit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/eqgraph/builder"
	"github.com/katalvlaran/eqgraph/clock"
	"github.com/katalvlaran/eqgraph/literals"
)

// Organizer aggregates the fit surface of one model (or sub-model): named
// parameters, nested organizers, the constraints and restraints declared
// through it, and a builder.Factory scoped to its names.
//
// The organizer's clock observes every registered parameter, restrained
// equation and sub-organizer, so one GTE check answers "has anything under
// here moved since I last looked".
type Organizer struct {
	name    string
	clk     *clock.Clock
	factory *builder.Factory
	log     *zap.Logger

	params   map[string]Par
	parOrder []string

	orgs     map[string]*Organizer
	orgOrder []string

	constraints map[Par]*Constraint
	conOrder    []*Constraint

	restraints map[*Restraint]bool
	resOrder   []*Restraint
}

// OrganizerOption configures an Organizer at construction.
type OrganizerOption func(*Organizer)

// WithLogger installs a structured logger for registration and constraint
// events. Default is a nop logger.
func WithLogger(l *zap.Logger) OrganizerOption {
	return func(o *Organizer) {
		if l != nil {
			o.log = l
		}
	}
}

// NewOrganizer constructs an empty organizer with its own equation factory.
func NewOrganizer(name string, opts ...OrganizerOption) *Organizer {
	o := &Organizer{
		name:        name,
		clk:         clock.New(),
		factory:     builder.NewFactory(),
		log:         zap.NewNop(),
		params:      make(map[string]Par),
		orgs:        make(map[string]*Organizer),
		constraints: make(map[Par]*Constraint),
		restraints:  make(map[*Restraint]bool),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name returns the organizer's name.
func (o *Organizer) Name() string { return o.name }

// Clock returns the aggregate clock.
func (o *Organizer) Clock() *clock.Clock { return o.clk }

// Factory returns the equation factory scoped to this organizer's names.
func (o *Organizer) Factory() *builder.Factory { return o.factory }

// AddParameter registers p under its own name, making it resolvable in this
// organizer's equation text and observed by the aggregate clock.
// Re-registering the identical object is a no-op; a taken name fails with
// ErrNameConflict.
func (o *Organizer) AddParameter(p Par) error {
	if p == nil {
		return literals.ErrNilChild
	}
	name := p.Name()
	if name == "" {
		return ErrEmptyName
	}
	if have, ok := o.params[name]; ok {
		if have == p {
			return nil
		}
		return fmt.Errorf("organizer %q, parameter %q: %w", o.name, name, ErrNameConflict)
	}
	if _, ok := o.orgs[name]; ok {
		return fmt.Errorf("organizer %q, parameter %q: %w", o.name, name, ErrNameConflict)
	}
	if err := o.factory.RegisterArgument(name, p); err != nil {
		return err
	}
	o.params[name] = p
	o.parOrder = append(o.parOrder, name)
	o.clk.AddSubject(p.Clock())
	o.log.Debug("parameter registered",
		zap.String("organizer", o.name),
		zap.String("parameter", name))
	return nil
}

// RemoveParameter deregisters the parameter called name, releasing any
// constraint declared on it through this organizer.
func (o *Organizer) RemoveParameter(name string) error {
	p, ok := o.params[name]
	if !ok {
		return fmt.Errorf("organizer %q, parameter %q: %w", o.name, name, ErrUnknownName)
	}
	if c, held := o.constraints[p]; held {
		c.Release()
		o.dropConstraint(p)
	}
	o.factory.DeregisterArgument(name)
	o.clk.RemoveSubject(p.Clock())
	delete(o.params, name)
	for i, n := range o.parOrder {
		if n == name {
			o.parOrder = append(o.parOrder[:i], o.parOrder[i+1:]...)
			break
		}
	}
	o.log.Debug("parameter removed",
		zap.String("organizer", o.name),
		zap.String("parameter", name))
	return nil
}

// AddOrganizer nests sub under its own name. The aggregate clock observes
// the sub-organizer's clock, and Constraints/Restraints/FreeParameters
// recurse into it.
func (o *Organizer) AddOrganizer(sub *Organizer) error {
	if sub == nil {
		return literals.ErrNilChild
	}
	name := sub.Name()
	if name == "" {
		return ErrEmptyName
	}
	if have, ok := o.orgs[name]; ok {
		if have == sub {
			return nil
		}
		return fmt.Errorf("organizer %q, sub-organizer %q: %w", o.name, name, ErrNameConflict)
	}
	if _, ok := o.params[name]; ok {
		return fmt.Errorf("organizer %q, sub-organizer %q: %w", o.name, name, ErrNameConflict)
	}
	o.orgs[name] = sub
	o.orgOrder = append(o.orgOrder, name)
	o.clk.AddSubject(sub.clk)
	o.log.Debug("sub-organizer registered",
		zap.String("organizer", o.name),
		zap.String("sub", name))
	return nil
}

// Parameter returns the parameter registered under name, or nil.
func (o *Organizer) Parameter(name string) Par {
	return o.params[name]
}

// Organizer returns the sub-organizer registered under name, or nil.
func (o *Organizer) Organizer(name string) *Organizer {
	return o.orgs[name]
}

// Parameters returns this organizer's own parameters in registration order.
func (o *Organizer) Parameters() []Par {
	out := make([]Par, 0, len(o.parOrder))
	for _, name := range o.parOrder {
		out = append(out, o.params[name])
	}
	return out
}

// FreeParameters returns every parameter an optimizer may vary: not const
// and not constrained, collected recursively over sub-organizers and
// deduplicated by clock identity (a parameter shared between branches is
// one degree of freedom).
func (o *Organizer) FreeParameters() []Par {
	var out []Par
	seen := make(map[*clock.Clock]bool)
	o.freeParameters(&out, seen)
	return out
}

func (o *Organizer) freeParameters(out *[]Par, seen map[*clock.Clock]bool) {
	for _, name := range o.parOrder {
		p := o.params[name]
		if p.Const() || p.Constrained() || seen[p.Clock()] {
			continue
		}
		seen[p.Clock()] = true
		*out = append(*out, p)
	}
	for _, name := range o.orgOrder {
		o.orgs[name].freeParameters(out, seen)
	}
}

// Build compiles equation text over this organizer's registered names. ns
// resolves extra identifiers for this call only.
func (o *Organizer) Build(text string, ns map[string]literals.Literal) (literals.Literal, error) {
	return o.factory.Build(text, ns)
}

// Constrain builds text into an equation and constrains par to it. par need
// not be registered here, but the equation's identifiers resolve through
// this organizer's factory (plus ns).
func (o *Organizer) Constrain(par Par, text string, ns map[string]literals.Literal) error {
	eq, err := o.factory.Build(text, ns)
	if err != nil {
		return err
	}
	return o.ConstrainEquation(par, eq)
}

// ConstrainEquation constrains par to an already-built equation.
func (o *Organizer) ConstrainEquation(par Par, eq literals.Literal) error {
	if par != nil {
		if _, held := o.constraints[par]; held {
			return fmt.Errorf("organizer %q, parameter %q: %w", o.name, par.Name(), ErrConstraintConflict)
		}
	}
	c, err := Constrain(par, eq)
	if err != nil {
		return err
	}
	o.constraints[par] = c
	o.conOrder = append(o.conOrder, c)
	o.log.Debug("constraint attached",
		zap.String("organizer", o.name),
		zap.String("parameter", par.Name()))
	return nil
}

// Unconstrain releases the constraint declared on par through this
// organizer. The parameter keeps its final constrained value.
func (o *Organizer) Unconstrain(par Par) error {
	c, held := o.constraints[par]
	if !held {
		name := "<nil>"
		if par != nil {
			name = par.Name()
		}
		return fmt.Errorf("organizer %q, parameter %q: %w", o.name, name, ErrNotConstrained)
	}
	c.Release()
	o.dropConstraint(par)
	o.log.Debug("constraint released",
		zap.String("organizer", o.name),
		zap.String("parameter", par.Name()))
	return nil
}

func (o *Organizer) dropConstraint(par Par) {
	c := o.constraints[par]
	delete(o.constraints, par)
	for i, have := range o.conOrder {
		if have == c {
			o.conOrder = append(o.conOrder[:i], o.conOrder[i+1:]...)
			return
		}
	}
}

// Restrain builds text into an equation and restrains it to [lb, upper].
// WithNamespace supplies extra identifiers for the build; WithUpper and
// WithSigma shape the penalty.
func (o *Organizer) Restrain(text string, lb float64, opts ...RestraintOption) (*Restraint, error) {
	cfg := applyRestraintOptions(lb, opts)
	eq, err := o.factory.Build(text, cfg.ns)
	if err != nil {
		return nil, err
	}
	return o.RestrainEquation(eq, lb, opts...)
}

// RestrainEquation restrains an already-built equation.
func (o *Organizer) RestrainEquation(eq literals.Literal, lb float64, opts ...RestraintOption) (*Restraint, error) {
	r, err := NewRestraint(eq, lb, opts...)
	if err != nil {
		return nil, err
	}
	o.restraints[r] = true
	o.resOrder = append(o.resOrder, r)
	o.clk.AddSubject(eq.Clock())
	o.log.Debug("restraint attached", zap.String("organizer", o.name))
	return r, nil
}

// Unrestrain removes r from this organizer.
func (o *Organizer) Unrestrain(r *Restraint) error {
	if !o.restraints[r] {
		return fmt.Errorf("organizer %q: %w", o.name, ErrNotRestrained)
	}
	delete(o.restraints, r)
	for i, have := range o.resOrder {
		if have == r {
			o.resOrder = append(o.resOrder[:i], o.resOrder[i+1:]...)
			break
		}
	}
	o.clk.RemoveSubject(r.eq.Clock())
	o.log.Debug("restraint removed", zap.String("organizer", o.name))
	return nil
}

// Constraints returns every constraint declared here or in any
// sub-organizer, deduplicated by identity.
func (o *Organizer) Constraints() []*Constraint {
	var out []*Constraint
	seen := make(map[*Constraint]bool)
	o.collectConstraints(&out, seen)
	return out
}

func (o *Organizer) collectConstraints(out *[]*Constraint, seen map[*Constraint]bool) {
	for _, c := range o.conOrder {
		if !seen[c] {
			seen[c] = true
			*out = append(*out, c)
		}
	}
	for _, name := range o.orgOrder {
		o.orgs[name].collectConstraints(out, seen)
	}
}

// Restraints returns every restraint declared here or in any sub-organizer,
// deduplicated by identity.
func (o *Organizer) Restraints() []*Restraint {
	var out []*Restraint
	seen := make(map[*Restraint]bool)
	o.collectRestraints(&out, seen)
	return out
}

func (o *Organizer) collectRestraints(out *[]*Restraint, seen map[*Restraint]bool) {
	for _, r := range o.resOrder {
		if !seen[r] {
			seen[r] = true
			*out = append(*out, r)
		}
	}
	for _, name := range o.orgOrder {
		o.orgs[name].collectRestraints(out, seen)
	}
}

// Residual folds every restraint penalty into the caller's data residual:
// the sum of data() and all penalties. Pass nil for a pure restraint score.
func (o *Organizer) Residual(data func() float64) (float64, error) {
	total := 0.0
	if data != nil {
		total = data()
	}
	for _, r := range o.Restraints() {
		p, err := r.Penalty()
		if err != nil {
			return 0, fmt.Errorf("organizer %q: %w", o.name, err)
		}
		total += p
	}
	return total, nil
}
