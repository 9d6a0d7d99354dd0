// Package visitors implements the concrete traversals over equation graphs:
// argument extraction (ArgFinder), pretty-printing (Printer), structural
// validation (Validator), and in-place node replacement (Swapper).
//
// All traversals use the double-dispatch protocol of literals.Visitor: a
// node's Identify method calls back the handler matching its own kind, and
// a Generator runs its regeneration hook before being visited as a leaf.
// New traversals are new implementations of literals.Visitor over the same
// closed union of node kinds — never new methods on the nodes.
//
// Convenience entry points wrap each visitor:
//
//	Args(root, includeConst) — every reachable leaf, deduplicated by identity.
//	Print(root)              — human-readable expression text.
//	Validate(root)           — aggregated structural error, or nil.
//	Swap(root, old, new)     — rewrite child slots in place; returns the root
//	                           (new when root itself is old).
//
// Sharing hazard: because Literals are shared across independent graphs,
// Swap mutates every graph that references an affected Operator. That is by
// design — constraint re-binding relies on it — but callers must treat
// shared nodes as mutate-with-global-effect.
//
// Errors:
//
//	ErrUnimplemented - a Base visitor method was reached without an override.
package visitors
