// Package: eqgraph/visitors
//
// validator.go — depth-first structural validation of an equation graph.

package visitors

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/eqgraph/literals"
)

// Validator walks a graph depth-first and accumulates human-readable
// messages for every structural defect it finds:
//   - an Operator with no evaluation function,
//   - a positional child count that contradicts the declared arity,
//   - a node reachable from itself through its own children (a cycle, which
//     would otherwise recurse without bound at evaluation time),
//   - a Generator that has produced no literal.
//
// Validation never evaluates; it inspects structure only, so it is safe on
// graphs whose leaves hold garbage values.
type Validator struct {
	errs []string

	path map[literals.Literal]bool // nodes on the current descent
	done map[literals.Literal]bool // nodes fully checked (DAG dedup)
}

// NewValidator constructs an empty Validator.
func NewValidator() *Validator {
	return &Validator{
		path: make(map[literals.Literal]bool),
		done: make(map[literals.Literal]bool),
	}
}

// Errors returns the accumulated messages (possibly empty).
func (v *Validator) Errors() []string {
	out := make([]string, len(v.errs))
	copy(out, v.errs)
	return out
}

// report records one defect message.
func (v *Validator) report(format string, args ...interface{}) {
	v.errs = append(v.errs, fmt.Sprintf(format, args...))
}

// display names a node for messages, with a stand-in for anonymous nodes.
func display(l literals.Literal) string {
	if l == nil || l.Name() == "" {
		return "<anon>"
	}
	return l.Name()
}

// OnArgument accepts every leaf; a leaf cannot be structurally invalid.
func (v *Validator) OnArgument(literals.Arg) error { return nil }

// OnGenerator checks that the generator has produced a literal and descends
// into its auxiliary dependencies.
func (v *Validator) OnGenerator(g *literals.Generator) error {
	if v.done[g] {
		return nil
	}
	v.done[g] = true

	if g.Literal() == nil {
		v.report("generator %q has no generated literal", display(g))
	}
	for _, ch := range g.Args() {
		if err := ch.Identify(v); err != nil {
			return err
		}
	}
	return nil
}

// OnOperator checks the function, the arity, and the absence of cycles,
// then descends into positional and keyword children.
func (v *Validator) OnOperator(o *literals.Operator) error {
	// 1. Cycle: the node is already on the current descent path.
	if v.path[o] {
		v.report("cycle detected at operator %q", display(o))
		return nil
	}
	// 2. DAG dedup: a shared node is checked once.
	if v.done[o] {
		return nil
	}
	v.path[o] = true
	defer func() {
		delete(v.path, o)
		v.done[o] = true
	}()

	// 3. Local structure.
	if o.Func() == nil {
		v.report("operator %q has no evaluation function", display(o))
	}
	args := o.Args()
	if o.Arity() >= 0 && len(args) != o.Arity() {
		v.report("operator %q expects %d argument(s), has %d", display(o), o.Arity(), len(args))
	}

	// 4. Children.
	for _, ch := range args {
		if ch == nil {
			v.report("operator %q has a nil child", display(o))
			continue
		}
		if err := ch.Identify(v); err != nil {
			return err
		}
	}
	for _, name := range o.KeywordNames() {
		ch := o.Keyword(name)
		if ch == nil {
			v.report("operator %q has a nil keyword child %q", display(o), name)
			continue
		}
		if err := ch.Identify(v); err != nil {
			return err
		}
	}
	return nil
}

// Validate walks root and returns a single aggregated error describing
// every structural defect, or nil when the graph is sound.
func Validate(root literals.Literal) error {
	if root == nil {
		return literals.ErrNilChild
	}
	v := NewValidator()
	if err := root.Identify(v); err != nil {
		return err
	}

	var agg error
	for _, msg := range v.errs {
		agg = multierr.Append(agg, fmt.Errorf("visitors: %s", msg))
	}
	return agg
}
