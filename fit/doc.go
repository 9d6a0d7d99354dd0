// Package fit layers fitting semantics over equation graphs: parameters
// with bounds, constraints that drive one parameter from an equation over
// others, restraints that penalize equations leaving a range, and the
// Organizer that owns them all for one fitting session.
//
// The Par capability set extends the leaf surface with bounds and
// constraint state. Three implementations cover the usual shapes of a fit
// variable:
//
//   - Parameter        — a plain variable owned by the fit.
//   - ParameterProxy   — an alias: a different name over another Par's state.
//   - ParameterWrapper — an adapter over external getter/setter access, so
//     attributes of foreign calculators join a graph without copying.
//
// A constrained Par derives its value by evaluating its constraint equation
// on read; writing it fails with ErrConstrainedParameter until the
// constraint is released. Constraints are created through an Organizer (or
// Constrain directly) and refuse const targets, double constraints and
// constraint cycles.
//
// A Restraint scores an equation against [lower, upper]: the penalty is the
// worst violation divided by sigma, zero inside the range. Organizer.Residual
// folds all penalties into a caller-supplied data residual.
//
// Organizers nest. Parameters registered on an Organizer are resolvable by
// name in its equation text, and the aggregate clock observes every
// registered parameter and sub-organizer, so an optimizer can poll one clock
// to learn whether anything beneath has moved.
package fit
