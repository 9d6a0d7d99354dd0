// Package: eqgraph/builder
//
// functions.go — the builtin function table: arithmetic primitives and
// element-wise math, each packaged as an Operator evaluation function.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqgraph/literals"
)

// Function describes one callable of the mini-language: a display name, the
// required positional arity (<0 for variadic) and the evaluation function
// wired into every Operator built for a call site.
type Function struct {
	Name  string
	Arity int
	Fn    literals.Func
}

// binary adapts a two-value combinator to a literals.Func with a strict
// arity check.
func binary(name string, f func(a, b literals.Value) (literals.Value, error)) Function {
	return Function{
		Name:  name,
		Arity: 2,
		Fn: func(args []literals.Value, _ map[string]literals.Value) (literals.Value, error) {
			if len(args) != 2 {
				return literals.Value{}, fmt.Errorf("%s expects 2 arguments, got %d: %w", name, len(args), literals.ErrArity)
			}
			return f(args[0], args[1])
		},
	}
}

// unary adapts an element-wise float function to a literals.Func with a
// strict arity check.
func unary(name string, f func(float64) float64) Function {
	return Function{
		Name:  name,
		Arity: 1,
		Fn: func(args []literals.Value, _ map[string]literals.Value) (literals.Value, error) {
			if len(args) != 1 {
				return literals.Value{}, fmt.Errorf("%s expects 1 argument, got %d: %w", name, len(args), literals.ErrArity)
			}
			return literals.Map(args[0], f), nil
		},
	}
}

// builtins returns a fresh table of the default functions. Every Factory
// gets its own copy, so RegisterFunction overrides never leak across
// factories.
func builtins() map[string]Function {
	fns := []Function{
		binary("add", literals.Add),
		binary("subtract", literals.Sub),
		binary("multiply", literals.Mul),
		binary("divide", literals.Div),
		binary("power", literals.Pow),
		binary("mod", literals.Mod),
		binary("max", literals.Maximum),
		binary("min", literals.Minimum),
		unary("negate", func(x float64) float64 { return -x }),
		unary("abs", math.Abs),
		unary("sqrt", math.Sqrt),
		unary("exp", math.Exp),
		unary("log", math.Log),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
	}
	out := make(map[string]Function, len(fns))
	for _, f := range fns {
		out[f.Name] = f
	}
	return out
}
