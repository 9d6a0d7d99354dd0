package fit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/eqgraph/fit"
	"github.com/katalvlaran/eqgraph/literals"
)

func TestOrganizer_AddParameterRules(t *testing.T) {
	o := fit.NewOrganizer("model", fit.WithLogger(zaptest.NewLogger(t)))
	p := fit.NewParameter("p1", scalar(1))

	require.NoError(t, o.AddParameter(p))
	// Idempotent for the identical object.
	require.NoError(t, o.AddParameter(p))
	// A different object under a taken name is refused.
	assert.ErrorIs(t, o.AddParameter(fit.NewParameter("p1", scalar(9))), fit.ErrNameConflict)
	assert.ErrorIs(t, o.AddParameter(fit.NewParameter("", scalar(0))), fit.ErrEmptyName)
	assert.ErrorIs(t, o.AddParameter(nil), literals.ErrNilChild)

	assert.Same(t, p, o.Parameter("p1"))
	assert.Nil(t, o.Parameter("p2"))
}

func TestOrganizer_NamesSharedWithSubOrganizers(t *testing.T) {
	o := fit.NewOrganizer("model")
	require.NoError(t, o.AddParameter(fit.NewParameter("peak", scalar(1))))

	// A sub-organizer cannot take a parameter's name, and vice versa.
	assert.ErrorIs(t, o.AddOrganizer(fit.NewOrganizer("peak")), fit.ErrNameConflict)

	sub := fit.NewOrganizer("background")
	require.NoError(t, o.AddOrganizer(sub))
	require.NoError(t, o.AddOrganizer(sub)) // idempotent
	assert.ErrorIs(t, o.AddParameter(fit.NewParameter("background", scalar(0))), fit.ErrNameConflict)
	assert.Same(t, sub, o.Organizer("background"))
}

func TestOrganizer_BuildResolvesRegisteredNames(t *testing.T) {
	o := fit.NewOrganizer("model")
	p1 := fit.NewParameter("p1", scalar(1))
	p2 := fit.NewParameter("p2", scalar(2))
	require.NoError(t, o.AddParameter(p1))
	require.NoError(t, o.AddParameter(p2))

	eq, err := o.Build("p1 + p2", nil)
	require.NoError(t, err)
	v, err := literals.Evaluate(eq)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Float())

	// The graph tracks later parameter updates.
	require.NoError(t, p1.SetValue(scalar(9)))
	v, err = literals.Evaluate(eq)
	require.NoError(t, err)
	assert.Equal(t, 11.0, v.Float())
}

func TestOrganizer_ConstrainFromText(t *testing.T) {
	o := fit.NewOrganizer("model")
	p := fit.NewParameter("p", scalar(0))
	q := fit.NewParameter("q", scalar(10))
	require.NoError(t, o.AddParameter(p))
	require.NoError(t, o.AddParameter(q))

	require.NoError(t, o.Constrain(p, "2 * q", nil))
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, 20.0, v.Float())

	require.Len(t, o.Constraints(), 1)
	assert.Same(t, p, o.Constraints()[0].Par())

	// Double constraint through the organizer is refused.
	assert.ErrorIs(t, o.Constrain(p, "3 * q", nil), fit.ErrConstraintConflict)

	// Release keeps the last derived value.
	require.NoError(t, q.SetValue(scalar(7)))
	require.NoError(t, o.Unconstrain(p))
	v, err = p.Value()
	require.NoError(t, err)
	assert.Equal(t, 14.0, v.Float())
	assert.Empty(t, o.Constraints())

	assert.ErrorIs(t, o.Unconstrain(p), fit.ErrNotConstrained)
}

func TestOrganizer_RestrainFromText(t *testing.T) {
	o := fit.NewOrganizer("model")
	p := fit.NewParameter("p", scalar(12))
	require.NoError(t, o.AddParameter(p))

	r, err := o.Restrain("p", 0, fit.WithUpper(10))
	require.NoError(t, err)
	require.Len(t, o.Restraints(), 1)

	pen, err := r.Penalty()
	require.NoError(t, err)
	assert.Equal(t, 2.0, pen)

	require.NoError(t, o.Unrestrain(r))
	assert.Empty(t, o.Restraints())
	assert.ErrorIs(t, o.Unrestrain(r), fit.ErrNotRestrained)
}

func TestOrganizer_RestrainWithNamespace(t *testing.T) {
	o := fit.NewOrganizer("model")
	outside := fit.NewParameter("outside", scalar(15))

	r, err := o.Restrain("outside", 0, fit.WithUpper(10),
		fit.WithNamespace(map[string]literals.Literal{"outside": outside}))
	require.NoError(t, err)

	pen, err := r.Penalty()
	require.NoError(t, err)
	assert.Equal(t, 5.0, pen)
}

func TestOrganizer_FreeParameters(t *testing.T) {
	o := fit.NewOrganizer("model")
	free := fit.NewParameter("free", scalar(1))
	konst := fit.NewParameter("konst", scalar(2), fit.WithConst())
	driven := fit.NewParameter("driven", scalar(0))
	driver := fit.NewParameter("driver", scalar(3))
	for _, p := range []*fit.Parameter{free, konst, driven, driver} {
		require.NoError(t, o.AddParameter(p))
	}
	require.NoError(t, o.Constrain(driven, "2 * driver", nil))

	sub := fit.NewOrganizer("sub")
	subPar := fit.NewParameter("amplitude", scalar(4))
	require.NoError(t, sub.AddParameter(subPar))
	// The driver is shared with the sub-organizer: still one degree of freedom.
	require.NoError(t, sub.AddParameter(driver))
	require.NoError(t, o.AddOrganizer(sub))

	got := o.FreeParameters()
	require.Len(t, got, 3)
	assert.Same(t, free, got[0])
	assert.Same(t, driver, got[1])
	assert.Same(t, subPar, got[2])
}

func TestOrganizer_RecursiveConstraintAndRestraintUnion(t *testing.T) {
	top := fit.NewOrganizer("top")
	sub := fit.NewOrganizer("sub")
	require.NoError(t, top.AddOrganizer(sub))

	p := fit.NewParameter("p", scalar(0))
	q := fit.NewParameter("q", scalar(1))
	require.NoError(t, sub.AddParameter(p))
	require.NoError(t, sub.AddParameter(q))

	require.NoError(t, sub.Constrain(p, "2 * q", nil))
	_, err := sub.Restrain("q", 0, fit.WithUpper(5))
	require.NoError(t, err)

	assert.Len(t, top.Constraints(), 1)
	assert.Len(t, top.Restraints(), 1)
}

func TestOrganizer_AggregateClock(t *testing.T) {
	o := fit.NewOrganizer("model")
	p := fit.NewParameter("p", scalar(1))
	require.NoError(t, o.AddParameter(p))

	// Catch up, then verify a parameter write is observable at the top.
	o.Clock().Observe()
	require.True(t, o.Clock().GTE(p.Clock()))

	require.NoError(t, p.SetValue(scalar(2)))
	assert.False(t, o.Clock().GTE(p.Clock()))

	o.Clock().Observe()
	assert.True(t, o.Clock().GTE(p.Clock()))
}

func TestOrganizer_AggregateClockSeesSubOrganizer(t *testing.T) {
	top := fit.NewOrganizer("top")
	sub := fit.NewOrganizer("sub")
	p := fit.NewParameter("p", scalar(1))
	require.NoError(t, sub.AddParameter(p))
	require.NoError(t, top.AddOrganizer(sub))

	top.Clock().Observe()
	require.NoError(t, p.SetValue(scalar(5)))
	// The write two levels down is visible through the subject chain.
	assert.False(t, top.Clock().GTE(sub.Clock()))
}

func TestOrganizer_Residual(t *testing.T) {
	o := fit.NewOrganizer("model")
	p := fit.NewParameter("p", scalar(13))
	require.NoError(t, o.AddParameter(p))
	_, err := o.Restrain("p", 0, fit.WithUpper(10))
	require.NoError(t, err)

	// data residual 2.5 + penalty 3.
	got, err := o.Residual(func() float64 { return 2.5 })
	require.NoError(t, err)
	assert.Equal(t, 5.5, got)

	// nil data function scores restraints alone.
	got, err = o.Residual(nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestOrganizer_RemoveParameterReleasesConstraint(t *testing.T) {
	o := fit.NewOrganizer("model")
	p := fit.NewParameter("p", scalar(0))
	q := fit.NewParameter("q", scalar(2))
	require.NoError(t, o.AddParameter(p))
	require.NoError(t, o.AddParameter(q))
	require.NoError(t, o.Constrain(p, "2 * q", nil))

	require.NoError(t, o.RemoveParameter("p"))
	assert.False(t, p.Constrained())
	assert.Empty(t, o.Constraints())
	assert.Nil(t, o.Parameter("p"))

	// The name is free again.
	require.NoError(t, o.AddParameter(fit.NewParameter("p", scalar(1))))

	assert.ErrorIs(t, o.RemoveParameter("ghost"), fit.ErrUnknownName)
}
