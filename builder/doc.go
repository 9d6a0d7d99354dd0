// Package builder turns textual equations into bound node graphs.
//
// The mini-language is deliberately small: identifiers, numeric literals,
// the binary operators + - * / ** %, unary -, parentheses, and function
// calls name(arg, ..., kw=val, ...). ** is right-associative and binds
// tighter than unary minus, so "-2**2" parses as -(2**2).
//
// A Factory owns two registries: a name→leaf map populated with
// RegisterArgument, and a name→function table preloaded with the builtin
// arithmetic and element-wise math functions (RegisterFunction adds more).
// Build resolves every free identifier through the registry, then through
// the one-shot namespace override supplied to that call — the override is
// transient and never retained. Resolution failures and override conflicts
// are reported before any graph is returned; the built graph is validated
// structurally before it is handed out, so a successful Build is always
// safely evaluatable.
//
// Numeric literals become anonymous const leaves, which the Printer renders
// back as their value.
//
// Errors:
//
//	ErrSyntax         - the text does not parse (position attached via %w context).
//	ErrUnresolvedName - a free identifier (or called function) is not registered.
//	ErrNameConflict   - a name re-registered (or overridden) with a different object.
//	ErrEmptyName      - registration under the empty name.
package builder
