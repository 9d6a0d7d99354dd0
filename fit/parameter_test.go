package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqgraph/fit"
	"github.com/katalvlaran/eqgraph/literals"
)

func scalar(v float64) literals.Value { return literals.Scalar(v) }

// times2 builds the equation 2 * p.
func times2(p fit.Par) literals.Literal {
	op := literals.NewOperator("multiply", 2, func(args []literals.Value, _ map[string]literals.Value) (literals.Value, error) {
		return literals.Mul(args[0], args[1])
	})
	_ = op.AddLiteral(literals.NewArgument("", scalar(2), true))
	_ = op.AddLiteral(p)
	return op
}

func TestParameter_Basics(t *testing.T) {
	p := fit.NewParameter("width", scalar(1.5))

	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v.Float())
	assert.False(t, p.Const())
	assert.False(t, p.Constrained())

	lb, ub := p.Bounds()
	assert.True(t, lb < 0 && ub > 0) // unbounded by default

	require.NoError(t, p.SetValue(scalar(2)))
	v, _ = p.Value()
	assert.Equal(t, 2.0, v.Float())
}

func TestParameter_ConstRejectsWrites(t *testing.T) {
	p := fit.NewParameter("c", scalar(7), fit.WithConst())
	assert.True(t, p.Const())
	assert.ErrorIs(t, p.SetValue(scalar(8)), literals.ErrConstArgument)

	// SetConst(false) unfreezes.
	p.SetConst(false)
	require.NoError(t, p.SetValue(scalar(8)))
}

func TestParameter_Bounds(t *testing.T) {
	p := fit.NewParameter("x", scalar(0), fit.WithBounds(-1, 1))
	lb, ub := p.Bounds()
	assert.Equal(t, -1.0, lb)
	assert.Equal(t, 1.0, ub)

	require.NoError(t, p.SetBounds(0, 5))
	assert.ErrorIs(t, p.SetBounds(5, 0), fit.ErrBadBounds)
}

func TestParameter_ClickOnlyOnChange(t *testing.T) {
	p := fit.NewParameter("x", scalar(1))
	before := p.Clock().Stamp()

	require.NoError(t, p.SetValue(scalar(1))) // unchanged
	assert.Equal(t, before, p.Clock().Stamp())

	require.NoError(t, p.SetValue(scalar(2)))
	assert.Greater(t, p.Clock().Stamp(), before)
}

func TestConstrain_DrivesValue(t *testing.T) {
	p := fit.NewParameter("p", scalar(0))
	q := fit.NewParameter("q", scalar(10))

	c, err := fit.Constrain(p, times2(q))
	require.NoError(t, err)
	assert.True(t, p.Constrained())

	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 20.0, v.Float())

	// The driving parameter moves; the constrained one follows on read.
	require.NoError(t, q.SetValue(scalar(3)))
	v, err = p.Value()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v.Float())

	// Direct writes are refused while constrained.
	assert.ErrorIs(t, p.SetValue(scalar(1)), fit.ErrConstrainedParameter)

	// Release: the final constrained value survives and writes work again.
	c.Release()
	assert.False(t, p.Constrained())
	v, err = p.Value()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v.Float())
	require.NoError(t, p.SetValue(scalar(1)))
}

func TestConstrain_Conflicts(t *testing.T) {
	q := fit.NewParameter("q", scalar(1))

	konst := fit.NewParameter("k", scalar(2), fit.WithConst())
	_, err := fit.Constrain(konst, times2(q))
	assert.ErrorIs(t, err, fit.ErrConstraintConflict)

	p := fit.NewParameter("p", scalar(0))
	_, err = fit.Constrain(p, times2(q))
	require.NoError(t, err)
	_, err = fit.Constrain(p, times2(q))
	assert.ErrorIs(t, err, fit.ErrConstraintConflict)
}

func TestConstrain_DirectCycle(t *testing.T) {
	p := fit.NewParameter("p", scalar(1))
	_, err := fit.Constrain(p, times2(p))
	assert.ErrorIs(t, err, fit.ErrConstraintConflict)
	assert.False(t, p.Constrained())
}

func TestConstrain_MutualCycle(t *testing.T) {
	p := fit.NewParameter("p", scalar(1))
	q := fit.NewParameter("q", scalar(2))

	_, err := fit.Constrain(p, times2(q))
	require.NoError(t, err)

	// q ← f(p) would close the loop p ← f(q) ← f(p).
	_, err = fit.Constrain(q, times2(p))
	assert.ErrorIs(t, err, fit.ErrConstraintConflict)
	assert.False(t, q.Constrained())
}

func TestProxy_SharesState(t *testing.T) {
	p := fit.NewParameter("sigma", scalar(4))
	alias, err := fit.NewParameterProxy("peakwidth", p)
	require.NoError(t, err)

	assert.Equal(t, "peakwidth", alias.Name())
	assert.Same(t, p.Clock(), alias.Clock())
	assert.Same(t, p, alias.Target())

	// Writes through either side are visible on both.
	require.NoError(t, alias.SetValue(scalar(5)))
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.Float())
}

func TestProxy_ConstraintReachesTarget(t *testing.T) {
	p := fit.NewParameter("p", scalar(0))
	alias, err := fit.NewParameterProxy("alias", p)
	require.NoError(t, err)
	q := fit.NewParameter("q", scalar(6))

	_, err = fit.Constrain(alias, times2(q))
	require.NoError(t, err)

	// The target is the constrained variable.
	assert.True(t, p.Constrained())
	assert.ErrorIs(t, p.SetValue(scalar(1)), fit.ErrConstrainedParameter)

	// Constraining the target again is a conflict through either handle.
	_, err = fit.Constrain(p, times2(q))
	assert.ErrorIs(t, err, fit.ErrConstraintConflict)
}

func TestProxy_Validation(t *testing.T) {
	p := fit.NewParameter("p", scalar(0))
	_, err := fit.NewParameterProxy("", p)
	assert.ErrorIs(t, err, fit.ErrEmptyName)
	_, err = fit.NewParameterProxy("x", nil)
	assert.ErrorIs(t, err, literals.ErrNilChild)
}

func TestWrapper_AdaptsExternalField(t *testing.T) {
	fields := map[string]float64{"scale": 2.5}
	w, err := fit.NewFieldWrapper("scale", fields, "scale")
	require.NoError(t, err)

	v, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Float())

	// Writes reach the owner.
	require.NoError(t, w.SetValue(scalar(3)))
	assert.Equal(t, 3.0, fields["scale"])

	// Out-of-band changes by the owner are visible and click the clock.
	before := w.Clock().Stamp()
	fields["scale"] = 9
	v, err = w.Value()
	require.NoError(t, err)
	assert.Equal(t, 9.0, v.Float())
	assert.Greater(t, w.Clock().Stamp(), before)
}

func TestWrapper_ConstrainedPushesToOwner(t *testing.T) {
	fields := map[string]float64{"scale": 0}
	w, err := fit.NewFieldWrapper("scale", fields, "scale")
	require.NoError(t, err)
	q := fit.NewParameter("q", scalar(4))

	_, err = fit.Constrain(w, times2(q))
	require.NoError(t, err)

	v, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, 8.0, v.Float())
	assert.Equal(t, 8.0, fields["scale"])

	assert.ErrorIs(t, w.SetValue(scalar(1)), fit.ErrConstrainedParameter)
}

func TestWrapper_Validation(t *testing.T) {
	_, err := fit.NewParameterWrapper("w", nil, func(float64) {})
	assert.ErrorIs(t, err, fit.ErrBadAccessor)
	_, err = fit.NewParameterWrapper("w", func() float64 { return 0 }, nil)
	assert.ErrorIs(t, err, fit.ErrBadAccessor)
	_, err = fit.NewParameterWrapper("", func() float64 { return 0 }, func(float64) {})
	assert.ErrorIs(t, err, fit.ErrEmptyName)
	_, err = fit.NewFieldWrapper("w", nil, "k")
	assert.ErrorIs(t, err, fit.ErrBadAccessor)

	w, err := fit.NewFieldWrapper("w", map[string]float64{"k": 1}, "k")
	require.NoError(t, err)
	assert.ErrorIs(t, w.SetValue(literals.Vector([]float64{1, 2})), literals.ErrShapeMismatch)
}

func TestRestraint_Penalties(t *testing.T) {
	p := fit.NewParameter("p", scalar(5))

	r, err := fit.NewRestraint(p, 0, fit.WithUpper(10))
	require.NoError(t, err)

	pen, err := r.Penalty()
	require.NoError(t, err)
	assert.Equal(t, 0.0, pen) // inside the range

	require.NoError(t, p.SetValue(scalar(12)))
	pen, _ = r.Penalty()
	assert.Equal(t, 2.0, pen) // above by 2

	require.NoError(t, p.SetValue(scalar(-3)))
	pen, _ = r.Penalty()
	assert.Equal(t, 3.0, pen) // below by 3
}

func TestRestraint_SigmaScalesPenalty(t *testing.T) {
	p := fit.NewParameter("p", scalar(13))
	r, err := fit.NewRestraint(p, 0, fit.WithUpper(10), fit.WithSigma(2))
	require.NoError(t, err)

	pen, err := r.Penalty()
	require.NoError(t, err)
	assert.Equal(t, 1.5, pen)
}

func TestRestraint_PointRangeAndVectorReduction(t *testing.T) {
	p := fit.NewParameter("p", scalar(4))

	// Without WithUpper the range is the single point lb.
	r, err := fit.NewRestraint(p, 4)
	require.NoError(t, err)
	pen, err := r.Penalty()
	require.NoError(t, err)
	assert.Equal(t, 0.0, pen)

	// A vector reduces to its worst violation.
	require.NoError(t, p.SetValue(literals.Vector([]float64{4, 7, 2})))
	pen, err = r.Penalty()
	require.NoError(t, err)
	assert.Equal(t, 3.0, pen) // 7 exceeds the point range by 3
}

func TestRestraint_Validation(t *testing.T) {
	p := fit.NewParameter("p", scalar(0))
	_, err := fit.NewRestraint(p, 0, fit.WithSigma(0))
	assert.ErrorIs(t, err, fit.ErrZeroSigma)
	_, err = fit.NewRestraint(p, 5, fit.WithUpper(1))
	assert.ErrorIs(t, err, fit.ErrBadBounds)
	_, err = fit.NewRestraint(nil, 0)
	assert.ErrorIs(t, err, literals.ErrNilChild)
}
