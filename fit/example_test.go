package fit_test

import (
	"fmt"

	"github.com/katalvlaran/eqgraph/fit"
	"github.com/katalvlaran/eqgraph/literals"
)

// ExampleOrganizer wires a tiny fit model: a free width, a full-width
// parameter constrained to follow it, and a restraint keeping the width in
// range.
func ExampleOrganizer() {
	org := fit.NewOrganizer("peak")

	width := fit.NewParameter("width", literals.Scalar(1.5))
	fwhm := fit.NewParameter("fwhm", literals.Scalar(0))
	_ = org.AddParameter(width)
	_ = org.AddParameter(fwhm)

	// fwhm is derived: direct writes now fail until the constraint is
	// released.
	_ = org.Constrain(fwhm, "2 * width", nil)
	v, _ := fwhm.Value()
	fmt.Println("fwhm:", v)

	// A restraint penalizes the width leaving [0, 1].
	_, _ = org.Restrain("width", 0, fit.WithUpper(1))
	total, _ := org.Residual(nil)
	fmt.Println("penalty:", total)

	// Only the width is free; fwhm is constrained.
	for _, p := range org.FreeParameters() {
		fmt.Println("free:", p.Name())
	}

	// Output:
	// fwhm: 3
	// penalty: 0.5
	// free: width
}
