package literals_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqgraph/literals"
)

func TestValue_ScalarArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b literals.Value) (literals.Value, error)
		a, b float64
		want float64
	}{
		{"add", literals.Add, 2, 3, 5},
		{"sub", literals.Sub, 2, 3, -1},
		{"mul", literals.Mul, 2, 3, 6},
		{"div", literals.Div, 3, 2, 1.5},
		{"pow", literals.Pow, 2, 10, 1024},
		{"mod", literals.Mod, 7, 4, 3},
		{"max", literals.Maximum, 7, 4, 7},
		{"min", literals.Minimum, 7, 4, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(literals.Scalar(tc.a), literals.Scalar(tc.b))
			require.NoError(t, err)
			assert.False(t, got.IsVector())
			assert.Equal(t, tc.want, got.Float())
		})
	}
}

func TestValue_Broadcasting(t *testing.T) {
	vec := literals.Vector([]float64{1, 2, 3})

	got, err := literals.Add(vec, literals.Scalar(10))
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, got.Floats())

	got, err = literals.Sub(literals.Scalar(10), vec)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8, 7}, got.Floats())

	got, err = literals.Mul(vec, literals.Vector([]float64{2, 2, 2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, got.Floats())
}

func TestValue_ShapeMismatch(t *testing.T) {
	_, err := literals.Add(literals.Vector([]float64{1, 2}), literals.Vector([]float64{1, 2, 3}))
	assert.ErrorIs(t, err, literals.ErrShapeMismatch)
}

func TestValue_DivByZeroIsIEEE(t *testing.T) {
	got, err := literals.Div(literals.Scalar(1), literals.Scalar(0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Float(), 1))
}

func TestValue_VectorKeepsBackingSlice(t *testing.T) {
	xs := []float64{1, 2, 3}
	v := literals.Vector(xs)
	// The Value references, never copies: external mutation is visible.
	xs[0] = 42
	assert.Equal(t, 42.0, v.Floats()[0])
}

func TestValue_EqualAndDiff(t *testing.T) {
	a := literals.Vector([]float64{1, 2})
	b := literals.Vector([]float64{1, 2})
	c := literals.Vector([]float64{1, 3})

	assert.Empty(t, cmp.Diff(a, b))
	assert.NotEmpty(t, cmp.Diff(a, c))
	assert.False(t, literals.Scalar(1).Equal(literals.Vector([]float64{1})))
}

func TestValue_MapAndNeg(t *testing.T) {
	v := literals.Neg(literals.Vector([]float64{1, -2}))
	assert.Equal(t, []float64{-1, 2}, v.Floats())

	s := literals.Map(literals.Scalar(4), math.Sqrt)
	assert.Equal(t, 2.0, s.Float())
}

func TestValue_MaxElement(t *testing.T) {
	assert.Equal(t, 3.0, literals.MaxElement(literals.Vector([]float64{1, 3, 2})))
	assert.Equal(t, 5.0, literals.MaxElement(literals.Scalar(5)))
	assert.True(t, math.IsInf(literals.MaxElement(literals.Vector(nil)), -1))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "1.5", literals.Scalar(1.5).String())
	assert.Equal(t, "[1 2.5]", literals.Vector([]float64{1, 2.5}).String())
}
