// Package eqgraph is your in-memory engine for building, printing and
// evaluating equation graphs — from raw leaves to constrained fit models.
//
// 🚀 What is eqgraph?
//
//	A lazy-evaluation expression engine for iterative model fitting:
//		• Leaves: named Arguments, const or mutable, scalar or vector
//		• Operators: cached interior nodes with positional + keyword children
//		• Generators: leaves that synthesize their own sub-graph on demand
//		• Clocks: logical stamps that make cache invalidation exact, not eager
//		• Visitors: find arguments, print, validate, swap nodes in place
//		• Builder: compile "a + 2*sin(x)" into a live graph
//		• Fit: parameters, constraints, restraints, nested organizers
//
// ✨ Why choose eqgraph?
//
//   - Pull-based invalidation – a million leaf updates cost one recompute
//   - Shared leaves – many equations over one parameter set, no copying
//   - Strict build – every name resolves and every graph validates before use
//   - Extensible – wrap any external getter/setter pair as a fit variable
//
// Everything is organized under six subpackages:
//
//	clock/    — logical clocks: Click, observe, GTE staleness checks
//	literals/ — Value, Argument, Operator, Generator and Evaluate
//	visitors/ — ArgFinder, Printer, Validator, Swapper traversals
//	builder/  — the equation mini-language and the Factory
//	fit/      — Parameter, Constraint, Restraint, Organizer
//	cmd/      — the eqgraph CLI: eval, fmt and YAML fit sessions
//
// Quick taste:
//
//	f := builder.NewFactory()
//	_ = f.RegisterArgument("x", literals.NewArgument("x", literals.Scalar(3), false))
//	eq, _ := f.Build("2 * x + 1", nil)
//	v, _ := literals.Evaluate(eq) // 7
//
// Dive into the package docs for the evaluation model, the constraint rules
// and the printer grammar.
//
//	go get github.com/katalvlaran/eqgraph
package eqgraph
