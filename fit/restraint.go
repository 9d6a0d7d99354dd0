// Package: eqgraph/fit
//
// restraint.go — Restraint: a soft penalty on an equation leaving a range.

package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqgraph/literals"
)

// Restraint scores an equation against the closed range [lower, upper].
// Unlike a Constraint it never drives a value; it only contributes a
// penalty to the residual, steering the optimizer without forbidding
// excursions.
type Restraint struct {
	eq    literals.Literal
	lb    float64
	ub    float64
	sigma float64
}

// restraintConfig collects the option state for NewRestraint and
// Organizer.Restrain.
type restraintConfig struct {
	ub    float64
	ubSet bool
	sigma float64
	ns    map[string]literals.Literal
}

// RestraintOption configures a restraint.
type RestraintOption func(*restraintConfig)

// WithUpper sets the upper bound. Without it the range collapses to the
// single point lower, penalizing any deviation.
func WithUpper(ub float64) RestraintOption {
	return func(c *restraintConfig) { c.ub, c.ubSet = ub, true }
}

// WithSigma sets the penalty scale: the violation is divided by sigma, so a
// larger sigma makes the restraint softer. Default 1.
func WithSigma(sigma float64) RestraintOption {
	return func(c *restraintConfig) { c.sigma = sigma }
}

// WithNamespace supplies a one-shot namespace for resolving the restraint's
// equation text. Only Organizer.Restrain consults it; NewRestraint takes an
// already-built equation and ignores it.
func WithNamespace(ns map[string]literals.Literal) RestraintOption {
	return func(c *restraintConfig) { c.ns = ns }
}

func applyRestraintOptions(lb float64, opts []RestraintOption) restraintConfig {
	cfg := restraintConfig{sigma: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.ubSet {
		cfg.ub = lb
	}
	return cfg
}

// NewRestraint restrains eq to [lb, upper] (upper via WithUpper, default
// lb). Fails with ErrZeroSigma on a non-positive sigma and ErrBadBounds
// when the range is inverted.
func NewRestraint(eq literals.Literal, lb float64, opts ...RestraintOption) (*Restraint, error) {
	if eq == nil {
		return nil, literals.ErrNilChild
	}
	cfg := applyRestraintOptions(lb, opts)
	if cfg.sigma <= 0 {
		return nil, fmt.Errorf("sigma %v: %w", cfg.sigma, ErrZeroSigma)
	}
	if cfg.ub < lb {
		return nil, fmt.Errorf("[%v, %v]: %w", lb, cfg.ub, ErrBadBounds)
	}
	return &Restraint{eq: eq, lb: lb, ub: cfg.ub, sigma: cfg.sigma}, nil
}

// Equation returns the restrained equation.
func (r *Restraint) Equation() literals.Literal { return r.eq }

// Range returns the tolerated bounds.
func (r *Restraint) Range() (lb, ub float64) { return r.lb, r.ub }

// Sigma returns the penalty scale.
func (r *Restraint) Sigma() float64 { return r.sigma }

// Penalty evaluates the equation and scores it: zero inside [lower, upper],
// otherwise the distance to the nearer bound divided by sigma. A vector
// result reduces to its worst element, so one bad point dominates.
func (r *Restraint) Penalty() (float64, error) {
	v, err := literals.Evaluate(r.eq)
	if err != nil {
		return 0, err
	}
	viol := literals.Map(v, func(x float64) float64 {
		return math.Max(0, math.Max(r.lb-x, x-r.ub))
	})
	return literals.MaxElement(viol) / r.sigma, nil
}
