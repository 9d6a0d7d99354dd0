// Package literals defines the node model of an equation graph: the Literal
// variants (Argument, Operator, Generator), the Value type they exchange,
// and the demand-driven cached evaluation that makes repeated re-evaluation
// cheap inside a fitting loop.
//
// Node kinds:
//   - Argument  — a named, mutable scalar or vector value (a leaf).
//   - Operator  — an interior node applying a pure Func to the values of its
//     positional and keyword children, with a clock-guarded result cache.
//   - Generator — an abstract leaf that synthesizes or refreshes another
//     Literal under a caller-supplied policy hook.
//
// Identity is pointer identity, never value equality. Graphs are DAGs with
// shared leaves: the same Argument is commonly referenced by several
// Operators across independent equations, and any mutation is visible to
// every graph sharing the node.
//
// Evaluation is pull-based. An Operator recomputes iff its clock has not
// observed all of its children's clocks (see package clock); after
// recomputing it clicks and the cache is valid again. Arity and shape
// checking belong to the Func; a failure surfaces as an *EvaluationError
// naming the offending node.
//
// Visitors (package visitors) dispatch over the closed set of node kinds via
// Literal.Identify; see the Visitor interface here for the capability set.
//
// Errors:
//
//	ErrConstArgument    - mutation of a const Argument was rejected.
//	ErrShapeMismatch    - element-wise arithmetic over unequal vector lengths.
//	ErrNilChild         - an Operator or Generator holds a nil child slot.
//	ErrDuplicateKeyword - a keyword child name was registered twice.
//	ErrArity            - a Func received the wrong number of arguments.
//	EvaluationError     - wrapper tagging evaluation failures with the node name.
package literals
