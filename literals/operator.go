// Package: eqgraph/literals
//
// operator.go — Operator, the interior node: ordered positional children,
// named keyword children, a pure evaluation function, and a clock-guarded
// result cache.

package literals

import (
	"fmt"

	"github.com/katalvlaran/eqgraph/clock"
)

// Func is the pure evaluation function of an Operator. args holds the
// positional children's values in declaration order; kw the keyword
// children's values. Arity and shape checking are the Func's
// responsibility — return ErrArity / ErrShapeMismatch (wrapped as needed)
// and the engine tags the failure with the owning node's name.
type Func func(args []Value, kw map[string]Value) (Value, error)

// Operator applies a Func to the values of its children. Children are
// referenced, not copied: the same Literal may appear under many Operators
// across independent equations (the graph is a DAG, not a tree).
//
// Caching: the cached result is valid exactly while the Operator's clock is
// GTE every child's clock. Recomputing evaluates children positional-first,
// then keyword, in declaration order, applies the Func, stores the result
// and clicks — restoring the invariant.
type Operator struct {
	name  string
	fn    Func
	arity int // required positional arity; <0 means variadic

	args    []Literal
	kwNames []string // keyword declaration order
	kw      map[string]Literal

	clk       *clock.Clock
	cache     Value
	evaluated bool // false until the first successful evaluation, and after a structural rewrite
}

// NewOperator constructs an interior node. arity is the number of
// positional children fn requires; pass a negative arity for variadic
// functions. Children are attached afterwards with AddLiteral / AddKeyword.
func NewOperator(name string, arity int, fn Func) *Operator {
	return &Operator{
		name:  name,
		fn:    fn,
		arity: arity,
		kw:    make(map[string]Literal),
		clk:   clock.New(),
	}
}

// Name returns the display name.
func (o *Operator) Name() string { return o.name }

// Clock returns the clock owned by this node.
func (o *Operator) Clock() *clock.Clock { return o.clk }

// Arity reports the required positional arity (<0 for variadic).
func (o *Operator) Arity() int { return o.arity }

// Func returns the evaluation function.
func (o *Operator) Func() Func { return o.fn }

// AddLiteral appends l as the next positional child and registers its clock
// as a subject, so staleness of l (or anything l observes) propagates here.
func (o *Operator) AddLiteral(l Literal) error {
	if l == nil {
		return fmt.Errorf("operator %q: %w", o.name, ErrNilChild)
	}
	o.args = append(o.args, l)
	o.clk.AddSubject(l.Clock())
	o.evaluated = false
	return nil
}

// AddKeyword attaches l as the keyword child named name. Keyword names are
// unique among keyword children; declaration order is preserved for
// evaluation and printing.
func (o *Operator) AddKeyword(name string, l Literal) error {
	if l == nil {
		return fmt.Errorf("operator %q, keyword %q: %w", o.name, name, ErrNilChild)
	}
	if _, dup := o.kw[name]; dup {
		return fmt.Errorf("operator %q, keyword %q: %w", o.name, name, ErrDuplicateKeyword)
	}
	o.kwNames = append(o.kwNames, name)
	o.kw[name] = l
	o.clk.AddSubject(l.Clock())
	o.evaluated = false
	return nil
}

// Args returns the positional children in declaration order. The slice is a
// copy; the referenced nodes are live.
func (o *Operator) Args() []Literal {
	out := make([]Literal, len(o.args))
	copy(out, o.args)
	return out
}

// KeywordNames returns the keyword child names in declaration order.
func (o *Operator) KeywordNames() []string {
	out := make([]string, len(o.kwNames))
	copy(out, o.kwNames)
	return out
}

// Keyword returns the keyword child bound to name, or nil.
func (o *Operator) Keyword(name string) Literal {
	return o.kw[name]
}

// fresh reports whether the cached result is still valid: one successful
// evaluation has happened and this clock is GTE every child's clock.
func (o *Operator) fresh() bool {
	if !o.evaluated {
		return false
	}
	for _, ch := range o.args {
		if !o.clk.GTE(ch.Clock()) {
			return false
		}
	}
	for _, name := range o.kwNames {
		if !o.clk.GTE(o.kw[name].Clock()) {
			return false
		}
	}
	return true
}

// Value returns the Operator's result, recomputing only when stale.
//
// Recompute order is positional children in declaration order, then keyword
// children in declaration order — observable by side-effecting Funcs and by
// Generators embedded in the graph.
func (o *Operator) Value() (Value, error) {
	// 1. Cache hit: nothing below has produced a newer stamp.
	if o.fresh() {
		return o.cache, nil
	}

	// 2. Evaluate positional children.
	vals := make([]Value, len(o.args))
	for i, ch := range o.args {
		v, err := Evaluate(ch)
		if err != nil {
			return Value{}, evalErr(o.name, err)
		}
		vals[i] = v
	}

	// 3. Evaluate keyword children in declaration order.
	var kwVals map[string]Value
	if len(o.kwNames) > 0 {
		kwVals = make(map[string]Value, len(o.kwNames))
		for _, name := range o.kwNames {
			v, err := Evaluate(o.kw[name])
			if err != nil {
				return Value{}, evalErr(o.name, err)
			}
			kwVals[name] = v
		}
	}

	// 4. Apply the function.
	if o.fn == nil {
		return Value{}, evalErr(o.name, ErrNilChild)
	}
	res, err := o.fn(vals, kwVals)
	if err != nil {
		return Value{}, evalErr(o.name, err)
	}

	// 5. Cache and restore the clock invariant (now GTE all children).
	o.cache = res
	o.evaluated = true
	o.clk.Click()
	return res, nil
}

// ReplaceArg swaps the positional child at index i for repl, fixing clock
// subjects and invalidating the cache. This is the mutation primitive used
// by the Swapper visitor.
//
// Hazard: children are shared across independent graphs. Replacing a child
// here is visible to every equation that references this Operator — by
// design, not by accident.
func (o *Operator) ReplaceArg(i int, repl Literal) error {
	if i < 0 || i >= len(o.args) {
		return fmt.Errorf("operator %q: arg index %d out of range: %w", o.name, i, ErrNoSuchChild)
	}
	if repl == nil {
		return fmt.Errorf("operator %q: %w", o.name, ErrNilChild)
	}
	old := o.args[i]
	o.args[i] = repl
	o.rewire(old, repl)
	return nil
}

// ReplaceKeyword swaps the keyword child bound to name for repl. Same
// sharing hazard as ReplaceArg.
func (o *Operator) ReplaceKeyword(name string, repl Literal) error {
	if repl == nil {
		return fmt.Errorf("operator %q, keyword %q: %w", o.name, name, ErrNilChild)
	}
	if _, ok := o.kw[name]; !ok {
		return fmt.Errorf("operator %q, keyword %q: %w", o.name, name, ErrNoSuchChild)
	}
	old := o.kw[name]
	o.kw[name] = repl
	o.rewire(old, repl)
	return nil
}

// rewire updates clock subjects after a child swap and forces the next
// Value call to recompute. The old subject is detached only when no other
// child slot still references the old node.
func (o *Operator) rewire(old, repl Literal) {
	stillHeld := false
	for _, ch := range o.args {
		if ch == old {
			stillHeld = true
			break
		}
	}
	if !stillHeld {
		for _, ch := range o.kw {
			if ch == old {
				stillHeld = true
				break
			}
		}
	}
	if !stillHeld && old != nil {
		o.clk.RemoveSubject(old.Clock())
	}
	if repl != nil {
		o.clk.AddSubject(repl.Clock())
	}
	// Structural change: the cache can no longer be trusted regardless of
	// stamp ordering, and downstream observers must see a new stamp.
	o.evaluated = false
	o.clk.Click()
}

// Identify dispatches to the visitor's operator handler.
func (o *Operator) Identify(v Visitor) error {
	return v.OnOperator(o)
}
