// Package: eqgraph/fit
//
// errors.go — sentinel errors for the fit package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Context (parameter name, organizer name) is attached with %w at the
//     call site, never baked into the sentinel.

package fit

import "errors"

var (
	// ErrEmptyName indicates a registration attempt under the empty name.
	ErrEmptyName = errors.New("fit: empty name")

	// ErrNameConflict indicates a name already bound to a different
	// parameter or sub-organizer.
	ErrNameConflict = errors.New("fit: name already in use")

	// ErrUnknownName indicates a lookup or removal of a name that is not
	// registered.
	ErrUnknownName = errors.New("fit: unknown name")

	// ErrConstrainedParameter indicates a direct write to a parameter whose
	// value is driven by a constraint equation. Release the constraint first.
	ErrConstrainedParameter = errors.New("fit: parameter is constrained")

	// ErrConstraintConflict indicates a constraint that cannot be created:
	// the target is const, already constrained, or the equation would form a
	// constraint cycle.
	ErrConstraintConflict = errors.New("fit: conflicting constraint")

	// ErrNotConstrained indicates a release attempt on a parameter that has
	// no constraint.
	ErrNotConstrained = errors.New("fit: parameter is not constrained")

	// ErrNotRestrained indicates a removal attempt on a restraint the
	// organizer does not hold.
	ErrNotRestrained = errors.New("fit: unknown restraint")

	// ErrZeroSigma indicates a restraint with a non-positive scale factor.
	ErrZeroSigma = errors.New("fit: restraint sigma must be positive")

	// ErrBadBounds indicates a bound pair with lower above upper.
	ErrBadBounds = errors.New("fit: lower bound above upper bound")

	// ErrBadAccessor indicates a wrapper constructed without both a getter
	// and a setter.
	ErrBadAccessor = errors.New("fit: wrapper needs both getter and setter")
)
