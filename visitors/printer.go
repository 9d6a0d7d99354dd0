// Package: eqgraph/visitors
//
// printer.go — human-readable rendering of an equation graph.

package visitors

import (
	"strings"

	"github.com/katalvlaran/eqgraph/literals"
)

// infixSymbols maps the well-known binary operator names to their infix
// rendering. Everything else renders as a function call.
var infixSymbols = map[string]string{
	"add":      "+",
	"subtract": "-",
	"multiply": "*",
	"divide":   "/",
	"power":    "**",
	"mod":      "%",
}

// unarySymbols maps the well-known unary operator names to their prefix
// rendering.
var unarySymbols = map[string]string{
	"negate": "-",
}

// Printer renders an equation graph as expression text. Named leaves print
// their name; anonymous leaves (name "" or starting with "_") print their
// value. Known binary operators print infix, known unary operators prefix,
// everything else as name(arg1, arg2, kw=val).
//
// Each operator render is wrapped in parentheses, except when the sub-render
// already starts and ends with parentheses — the single redundancy the
// printer avoids.
type Printer struct {
	out string
}

// Output returns the text produced so far.
func (p *Printer) Output() string { return p.out }

// OnArgument appends the leaf's name, or its value when anonymous.
func (p *Printer) OnArgument(a literals.Arg) error {
	name := a.Name()
	if name == "" || strings.HasPrefix(name, "_") {
		v, err := a.Value()
		if err != nil {
			return err
		}
		p.out += v.String()
		return nil
	}
	p.out += name
	return nil
}

// OnGenerator prints a generator like a leaf: by name, or by its generated
// value when anonymous.
func (p *Printer) OnGenerator(g *literals.Generator) error {
	if g.Name() != "" {
		p.out += g.Name()
		return nil
	}
	v, err := g.Value()
	if err != nil {
		return err
	}
	p.out += v.String()
	return nil
}

// OnOperator renders the operator into a fresh buffer, parenthesizes it
// unless already fully parenthesized, and appends to the enclosing render.
func (p *Printer) OnOperator(o *literals.Operator) error {
	prefix := p.out
	p.out = ""

	args := o.Args()
	symbol, isInfix := infixSymbols[o.Name()]
	uSymbol, isUnary := unarySymbols[o.Name()]

	switch {
	case isInfix && len(args) == 2:
		if err := args[0].Identify(p); err != nil {
			return err
		}
		p.out += " " + symbol + " "
		if err := args[1].Identify(p); err != nil {
			return err
		}

	case isUnary && len(args) == 1:
		p.out += uSymbol
		if err := args[0].Identify(p); err != nil {
			return err
		}

	default:
		// Call form: name(arg1, arg2, kw=val). The body is built inside its
		// own parentheses, so the redundancy rule below leaves it alone.
		body := ""
		for _, ch := range args {
			sub := &Printer{}
			if err := ch.Identify(sub); err != nil {
				return err
			}
			if body != "" {
				body += ", "
			}
			body += sub.Output()
		}
		for _, name := range o.KeywordNames() {
			sub := &Printer{}
			if err := o.Keyword(name).Identify(sub); err != nil {
				return err
			}
			if body != "" {
				body += ", "
			}
			body += name + "=" + sub.Output()
		}
		p.out = o.Name() + "(" + body + ")"
		p.out = prefix + p.out
		return nil
	}

	if !(strings.HasPrefix(p.out, "(") && strings.HasSuffix(p.out, ")")) {
		p.out = "(" + p.out + ")"
	}
	p.out = prefix + p.out
	return nil
}

// Print renders root as expression text.
func Print(root literals.Literal) (string, error) {
	if root == nil {
		return "", literals.ErrNilChild
	}
	p := &Printer{}
	if err := root.Identify(p); err != nil {
		return "", err
	}
	return p.Output(), nil
}
