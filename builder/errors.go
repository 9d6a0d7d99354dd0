// Package: eqgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     context (identifier, position) is attached with %w at the call site.
//   - Every failure is raised at Build/Register time, never deferred to
//     evaluation: a graph returned by Build is safely evaluatable.

package builder

import "errors"

var (
	// ErrSyntax indicates the equation text does not parse. The wrapping
	// error names the offending token and its byte position.
	// Usage: if errors.Is(err, ErrSyntax) { /* report bad input */ }.
	ErrSyntax = errors.New("builder: syntax error")

	// ErrUnresolvedName indicates a free identifier — a variable or a called
	// function — resolved through neither the registry nor the one-shot
	// namespace override. The wrapping error names the identifier.
	// Usage: if errors.Is(err, ErrUnresolvedName) { /* register the leaf */ }.
	ErrUnresolvedName = errors.New("builder: unresolved name")

	// ErrNameConflict indicates a name was re-registered (or overridden via
	// a namespace) while already bound to a different object. Re-binding the
	// identical object is idempotent and allowed.
	ErrNameConflict = errors.New("builder: name bound to a different object")

	// ErrEmptyName indicates a registration attempt under the empty name.
	ErrEmptyName = errors.New("builder: empty name")
)
