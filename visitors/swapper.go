// Package: eqgraph/visitors
//
// swapper.go — in-place replacement of one node by another throughout a
// graph.

package visitors

import "github.com/katalvlaran/eqgraph/literals"

// Swapper walks a graph and replaces every child-slot reference to one node
// with another, mutating the owning Operators in place (positional and
// keyword slots alike). The traversal root itself is never mutated — when
// the root is the node being replaced, the caller must adopt the
// replacement as the new root (Swap does this).
//
// Hazard: Literals are shared across independent graphs. Swapping mutates
// every graph that references an affected Operator — by design. Graphs that
// reference the old node only through their own, unvisited parents are
// untouched.
type Swapper struct {
	old, repl literals.Literal

	visited map[literals.Literal]bool
	// swaps counts slot replacements, for diagnostics.
	swaps int
}

// NewSwapper constructs a Swapper that replaces old with repl.
func NewSwapper(old, repl literals.Literal) *Swapper {
	return &Swapper{
		old:     old,
		repl:    repl,
		visited: make(map[literals.Literal]bool),
	}
}

// Swaps reports how many child slots were rewritten.
func (s *Swapper) Swaps() int { return s.swaps }

// OnArgument does nothing: a leaf owns no child slots.
func (s *Swapper) OnArgument(literals.Arg) error { return nil }

// OnGenerator descends into the generated literal and the auxiliary
// dependencies to reach nested Operators; the Generator's own slots are
// never mutated (it is a leaf for rewriting purposes).
func (s *Swapper) OnGenerator(g *literals.Generator) error {
	if s.visited[g] {
		return nil
	}
	s.visited[g] = true

	if lit := g.Literal(); lit != nil {
		if err := lit.Identify(s); err != nil {
			return err
		}
	}
	for _, ch := range g.Args() {
		if err := ch.Identify(s); err != nil {
			return err
		}
	}
	return nil
}

// OnOperator rewrites matching child slots in place, then descends into the
// children that were not replaced.
func (s *Swapper) OnOperator(o *literals.Operator) error {
	if s.visited[o] {
		return nil
	}
	s.visited[o] = true

	for i, ch := range o.Args() {
		if ch == s.old {
			if err := o.ReplaceArg(i, s.repl); err != nil {
				return err
			}
			s.swaps++
			continue
		}
		if err := ch.Identify(s); err != nil {
			return err
		}
	}
	for _, name := range o.KeywordNames() {
		ch := o.Keyword(name)
		if ch == s.old {
			if err := o.ReplaceKeyword(name, s.repl); err != nil {
				return err
			}
			s.swaps++
			continue
		}
		if err := ch.Identify(s); err != nil {
			return err
		}
	}
	return nil
}

// Swap replaces every reference to old with repl throughout the graph
// rooted at root, in place, and returns the graph's root: repl when root
// itself is old, root otherwise. See Swapper for the sharing hazard.
func Swap(root, old, repl literals.Literal) (literals.Literal, error) {
	if root == nil || old == nil || repl == nil {
		return nil, literals.ErrNilChild
	}
	if root == old {
		return repl, nil
	}
	s := NewSwapper(old, repl)
	if err := root.Identify(s); err != nil {
		return nil, err
	}
	return root, nil
}
