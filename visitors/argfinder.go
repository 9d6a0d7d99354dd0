// Package: eqgraph/visitors
//
// argfinder.go — depth-first extraction of every leaf reachable from a root.

package visitors

import "github.com/katalvlaran/eqgraph/literals"

// ArgFinder collects every Arg (leaf) reachable from the traversal root.
// Leaves shared by several parents collapse to one entry by identity; the
// result preserves first-visit (depth-first, declaration) order, so it is
// deterministic for a given graph.
//
// A Generator contributes the leaves of its auxiliary dependency list — the
// nodes it tracks for change propagation — matching how generators declare
// what they depend on without exposing how they evaluate.
type ArgFinder struct {
	includeConst bool

	found   []literals.Arg
	seen    map[literals.Arg]bool
	visited map[literals.Literal]bool // interior nodes already expanded
}

// NewArgFinder constructs a finder. includeConst controls whether leaves
// flagged const appear in the result.
func NewArgFinder(includeConst bool) *ArgFinder {
	return &ArgFinder{
		includeConst: includeConst,
		seen:         make(map[literals.Arg]bool),
		visited:      make(map[literals.Literal]bool),
	}
}

// Found returns the collected leaves in first-visit order.
func (f *ArgFinder) Found() []literals.Arg {
	out := make([]literals.Arg, len(f.found))
	copy(out, f.found)
	return out
}

// OnArgument records the leaf, once per identity.
func (f *ArgFinder) OnArgument(a literals.Arg) error {
	if !f.includeConst && a.Const() {
		return nil
	}
	if f.seen[a] {
		return nil
	}
	f.seen[a] = true
	f.found = append(f.found, a)
	return nil
}

// OnOperator descends into positional then keyword children, in
// declaration order. Shared interior nodes are expanded once.
func (f *ArgFinder) OnOperator(o *literals.Operator) error {
	if f.visited[o] {
		return nil
	}
	f.visited[o] = true

	for _, ch := range o.Args() {
		if err := ch.Identify(f); err != nil {
			return err
		}
	}
	for _, name := range o.KeywordNames() {
		if err := o.Keyword(name).Identify(f); err != nil {
			return err
		}
	}
	return nil
}

// OnGenerator descends into the generator's auxiliary dependencies.
func (f *ArgFinder) OnGenerator(g *literals.Generator) error {
	if f.visited[g] {
		return nil
	}
	f.visited[g] = true

	for _, ch := range g.Args() {
		if err := ch.Identify(f); err != nil {
			return err
		}
	}
	return nil
}

// Args runs an ArgFinder over root and returns every reachable leaf,
// deduplicated by identity, in first-visit order. includeConst controls
// whether const leaves are reported.
func Args(root literals.Literal, includeConst bool) ([]literals.Arg, error) {
	if root == nil {
		return nil, literals.ErrNilChild
	}
	f := NewArgFinder(includeConst)
	if err := root.Identify(f); err != nil {
		return nil, err
	}
	return f.Found(), nil
}
