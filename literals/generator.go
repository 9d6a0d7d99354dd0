// Package: eqgraph/literals
//
// generator.go — Generator, an abstract leaf that synthesizes or refreshes
// another Literal under a caller-supplied policy.

package literals

import "github.com/katalvlaran/eqgraph/clock"

// GenerateFunc is the pluggable regeneration policy of a Generator. It
// receives the Generator's own clock as the observer and decides for itself
// whether regeneration is warranted (typically by comparing the observer
// against the clocks of whatever external state it mirrors). No default
// trigger condition is imposed.
type GenerateFunc func(observer *clock.Clock) error

// Generator is a leaf that stands in for a Literal it knows how to create
// or update. It behaves as a leaf during traversal, but lists auxiliary
// nodes (Args) it depends on purely for change propagation — they are never
// evaluated through the Generator itself.
//
// Typical use: a domain calculator that produces a profile array from
// structural state exposes the array through a Generator, regenerating only
// when that state has moved on.
type Generator struct {
	name     string
	literal  Literal
	args     []Literal
	generate GenerateFunc
	clk      *clock.Clock
}

// NewGenerator constructs a Generator with the given regeneration hook.
// A nil hook is legal and means the generated literal is static once set.
func NewGenerator(name string, generate GenerateFunc) *Generator {
	return &Generator{
		name:     name,
		generate: generate,
		clk:      clock.New(),
	}
}

// Name returns the display name.
func (g *Generator) Name() string { return g.name }

// Clock returns the clock owned by this node.
func (g *Generator) Clock() *clock.Clock { return g.clk }

// Literal returns the node generated so far (nil before first generation).
func (g *Generator) Literal() Literal { return g.literal }

// SetLiteral installs the generated node. Called by GenerateFunc
// implementations and by tests; clicks so downstream caches notice.
func (g *Generator) SetLiteral(l Literal) {
	g.literal = l
	g.clk.Click()
}

// SetGenerateFunc installs (or replaces) the regeneration hook. Policies
// usually close over the Generator itself, so they are attached after
// construction.
func (g *Generator) SetGenerateFunc(fn GenerateFunc) {
	g.generate = fn
}

// Args returns the auxiliary dependency nodes in registration order.
func (g *Generator) Args() []Literal {
	out := make([]Literal, len(g.args))
	copy(out, g.args)
	return out
}

// AddLiteral registers l as an auxiliary dependency: its clock becomes a
// subject of the Generator's clock, so changes to l propagate to anything
// observing the Generator, but l is never evaluated through it.
func (g *Generator) AddLiteral(l Literal) error {
	if l == nil {
		return ErrNilChild
	}
	g.args = append(g.args, l)
	g.clk.AddSubject(l.Clock())
	return nil
}

// Generate runs the regeneration hook, if any. It is invoked automatically
// by Identify (before visitor dispatch) and by Value; callers with a custom
// observer clock may invoke it directly.
func (g *Generator) Generate(observer *clock.Clock) error {
	if g.generate == nil {
		return nil
	}
	if observer == nil {
		observer = g.clk
	}
	return g.generate(observer)
}

// Value regenerates (per the hook's own policy) and evaluates the generated
// literal. A Generator that has produced nothing fails with ErrNilChild.
func (g *Generator) Value() (Value, error) {
	if err := g.Generate(g.clk); err != nil {
		return Value{}, evalErr(g.name, err)
	}
	if g.literal == nil {
		return Value{}, evalErr(g.name, ErrNilChild)
	}
	v, err := Evaluate(g.literal)
	if err != nil {
		return Value{}, evalErr(g.name, err)
	}
	return v, nil
}

// Identify first runs the regeneration hook, then dispatches to the
// visitor's generator handler. A hook failure aborts the visit.
func (g *Generator) Identify(v Visitor) error {
	if err := g.Generate(g.clk); err != nil {
		return evalErr(g.name, err)
	}
	return v.OnGenerator(g)
}
