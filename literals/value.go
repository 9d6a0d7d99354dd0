// Package: eqgraph/literals
//
// value.go — the Value type exchanged between nodes: a float64 scalar or a
// homogeneous []float64 vector, with element-wise arithmetic and
// scalar↔vector broadcasting.

package literals

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a scalar or vector numeric value. The zero Value is the scalar 0.
//
// Vector Values hold a reference to the caller's slice, not a copy: setting
// a leaf to a vector and reading it back yields the same backing array,
// mirroring how external calculators share arrays with the graph.
type Value struct {
	vec   []float64
	s     float64
	isVec bool
}

// Scalar wraps a float64 as a scalar Value.
func Scalar(s float64) Value {
	return Value{s: s}
}

// Vector wraps xs as a vector Value. The slice is referenced, not copied.
// A nil slice is a valid empty vector.
func Vector(xs []float64) Value {
	return Value{vec: xs, isVec: true}
}

// IsVector reports whether v holds a vector.
func (v Value) IsVector() bool {
	return v.isVec
}

// Float returns the scalar payload. For a vector Value it returns the first
// element (0 when empty); callers that care must check IsVector first.
func (v Value) Float() float64 {
	if !v.isVec {
		return v.s
	}
	if len(v.vec) == 0 {
		return 0
	}
	return v.vec[0]
}

// Floats returns the vector payload (the live backing slice). For a scalar
// Value it returns nil.
func (v Value) Floats() []float64 {
	if !v.isVec {
		return nil
	}
	return v.vec
}

// Len reports the element count: 1 for a scalar, len(slice) for a vector.
func (v Value) Len() int {
	if !v.isVec {
		return 1
	}
	return len(v.vec)
}

// at reads element i with scalar broadcasting: a scalar yields its single
// payload for every index.
func (v Value) at(i int) float64 {
	if !v.isVec {
		return v.s
	}
	return v.vec[i]
}

// Equal reports element-wise equality of shape and payload. NaN compares
// unequal, as in IEEE arithmetic. Recognized by go-cmp.
func (v Value) Equal(o Value) bool {
	if v.isVec != o.isVec {
		return false
	}
	if !v.isVec {
		return v.s == o.s
	}
	if len(v.vec) != len(o.vec) {
		return false
	}
	for i := range v.vec {
		if v.vec[i] != o.vec[i] {
			return false
		}
	}
	return true
}

// String renders a scalar as a plain number and a vector as "[x1 x2 ...]".
func (v Value) String() string {
	if !v.isVec {
		return strconv.FormatFloat(v.s, 'g', -1, 64)
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.vec {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// combine applies f element-wise over a and b with broadcasting:
//   - scalar ∘ scalar → scalar
//   - scalar ∘ vector (either side) → vector of the vector's length
//   - vector ∘ vector → vectors must agree in length, else ErrShapeMismatch
func combine(a, b Value, f func(x, y float64) float64) (Value, error) {
	// 1. Fast path: two scalars.
	if !a.isVec && !b.isVec {
		return Scalar(f(a.s, b.s)), nil
	}
	// 2. Shape check for vector-vector.
	if a.isVec && b.isVec && len(a.vec) != len(b.vec) {
		return Value{}, fmt.Errorf("lengths %d and %d: %w", len(a.vec), len(b.vec), ErrShapeMismatch)
	}
	// 3. Broadcast over the vector length.
	n := a.Len()
	if b.isVec {
		n = b.Len()
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = f(a.at(i), b.at(i))
	}
	return Vector(out), nil
}

// Map applies f element-wise to v, preserving shape. Used by unary
// evaluation functions (negate, sin, exp, ...).
func Map(v Value, f func(float64) float64) Value {
	if !v.isVec {
		return Scalar(f(v.s))
	}
	out := make([]float64, len(v.vec))
	for i, x := range v.vec {
		out[i] = f(x)
	}
	return Vector(out)
}

// Add returns a + b element-wise.
func Add(a, b Value) (Value, error) {
	return combine(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b element-wise.
func Sub(a, b Value) (Value, error) {
	return combine(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b element-wise.
func Mul(a, b Value) (Value, error) {
	return combine(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b element-wise. Division by zero follows IEEE-754
// (±Inf, NaN) rather than failing; fit residuals tolerate non-finite values.
func Div(a, b Value) (Value, error) {
	return combine(a, b, func(x, y float64) float64 { return x / y })
}

// Pow returns a ** b element-wise (math.Pow semantics).
func Pow(a, b Value) (Value, error) {
	return combine(a, b, math.Pow)
}

// Mod returns a % b element-wise (math.Mod semantics: the result keeps the
// sign of a).
func Mod(a, b Value) (Value, error) {
	return combine(a, b, math.Mod)
}

// Neg returns -v element-wise.
func Neg(v Value) Value {
	return Map(v, func(x float64) float64 { return -x })
}

// Maximum returns the element-wise maximum of a and b.
func Maximum(a, b Value) (Value, error) {
	return combine(a, b, math.Max)
}

// Minimum returns the element-wise minimum of a and b.
func Minimum(a, b Value) (Value, error) {
	return combine(a, b, math.Min)
}

// MaxElement reduces v to its largest element. An empty vector reduces to
// -Inf, the identity of max.
func MaxElement(v Value) float64 {
	if !v.isVec {
		return v.s
	}
	max := math.Inf(-1)
	for _, x := range v.vec {
		if x > max {
			max = x
		}
	}
	return max
}
