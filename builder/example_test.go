package builder_test

import (
	"fmt"

	"github.com/katalvlaran/eqgraph/builder"
	"github.com/katalvlaran/eqgraph/literals"
	"github.com/katalvlaran/eqgraph/visitors"
)

// ExampleFactory_Build compiles equation text over two registered leaves,
// prints the canonical form and evaluates it twice around a leaf update.
func ExampleFactory_Build() {
	f := builder.NewFactory()

	// Register the leaves the equation may reference.
	a := literals.NewArgument("a", literals.Scalar(1), false)
	b := literals.NewArgument("b", literals.Scalar(3), false)
	_ = f.RegisterArgument("a", a)
	_ = f.RegisterArgument("b", b)

	// Build once; the graph stays live against the leaves.
	eq, err := f.Build("a + 2 * b", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The printer renders infix operators with explicit grouping.
	printed, _ := visitors.Print(eq)
	fmt.Println(printed)

	v, _ := literals.Evaluate(eq)
	fmt.Println(v)

	// Updating a leaf invalidates exactly the affected caches.
	_ = a.SetValue(literals.Scalar(10))
	v, _ = literals.Evaluate(eq)
	fmt.Println(v)

	// Output:
	// (a + (2 * b))
	// 7
	// 16
}
