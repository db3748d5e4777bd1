package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestReferenceScenario(t *testing.T) {
	// The reference values the course handout checks against.
	u := NewFrom(1, 2, 3)
	v := NewFrom(3, 1, 2)
	w := NewFrom(5, 3, 7)
	a := 4.0

	assert.Equal(t, []float64{4, 3, 5}, u.Add(v).Raw())
	assert.Equal(t, []float64{-2, 1, 1}, u.Sub(v).Raw())
	assert.Equal(t, []float64{4, 8, 12}, u.Scale(a).Raw())
	assert.Equal(t, []float64{4, 8, 12}, Scale(a, u).Raw())
	assert.InDelta(t, 3.74166, Norm(u), tol)
	assert.InDelta(t, 11, Inner(u, v), tol)
	assert.Equal(t, []float64{1, 7, -5}, Cross(u, v).Raw())
	assert.InDelta(t, -9, Det(u, v, w), tol)
}

func TestAddComponentwise(t *testing.T) {
	tests := []struct {
		name string
		u, v Vec
		want []float64
	}{
		{"plane", NewFrom(1.2, 3.4), NewFrom(5.6, 7.8), []float64{6.8, 11.2}},
		{"space", NewFrom(1, 2, 3), NewFrom(3, 1, 2), []float64{4, 3, 5}},
		{"negatives", NewFrom(-1, 0, 1, 2), NewFrom(1, 0, -1, -2), []float64{0, 0, 0, 0}},
		{"empty", New(0), New(0), []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.u.Add(tt.v)
			require.Equal(t, tt.u.Dim(), got.Dim())
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got.At(i), tol)
			}
		})
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	u := NewFrom(9.2, 4.1, 1.8, -7.7)
	v := NewFrom(0.3, -2.5, 8.8, 1.1)

	back := u.Sub(v).Add(v)
	for i := 0; i < u.Dim(); i++ {
		assert.InDelta(t, u.At(i), back.At(i), tol)
	}
}

func TestScaleCommutes(t *testing.T) {
	u := NewFrom(2, 3, 2, 4)
	for _, a := range []float64{0, 1, -1, 2, 0.5, -3.25} {
		left := Scale(a, u)
		right := u.Scale(a)
		assert.Equal(t, left.Raw(), right.Raw(), "a=%g", a)
	}
}

func TestNormMatchesInner(t *testing.T) {
	vecs := []Vec{
		NewFrom(3, 4),
		NewFrom(1, 2, 3),
		NewFrom(0, 0, 0),
		NewFrom(-1.5, 2.5, -3.5, 4.5),
	}
	for _, u := range vecs {
		assert.InDelta(t, math.Sqrt(Inner(u, u)), Norm(u), tol)
	}
}

func TestCrossOrthogonality(t *testing.T) {
	pairs := [][2]Vec{
		{NewFrom(1, 2, 3), NewFrom(3, 1, 2)},
		{NewFrom(2, 3, 0), NewFrom(0, 0, 1)},
		{NewFrom(-1, 4, 0.5), NewFrom(2, 2, 2)},
	}
	for _, p := range pairs {
		c := Cross(p[0], p[1])
		assert.InDelta(t, 0, Inner(c, p[0]), tol)
		assert.InDelta(t, 0, Inner(c, p[1]), tol)
	}
}

func TestDetIsScalarTriple(t *testing.T) {
	u := NewFrom(1, 2, 3)
	v := NewFrom(3, 1, 2)
	w := NewFrom(5, 3, 7)

	assert.InDelta(t, Inner(Cross(u, v), w), Det(u, v, w), tol)

	// Right-handed basis has unit determinant.
	e1 := NewFrom(1, 0, 0)
	e2 := NewFrom(0, 1, 0)
	e3 := NewFrom(0, 0, 1)
	assert.InDelta(t, 1, Det(e1, e2, e3), tol)
}

func TestIndexing(t *testing.T) {
	u := NewFrom(7, 5, 3)
	u.Set(1, 9)
	assert.Equal(t, 9.0, u.At(1))
	assert.Equal(t, []float64{7, 9, 3}, u.Raw())

	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { u.At(3) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { u.At(-1) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { u.Set(3, 0) })
}

func TestDimensionMismatchPanics(t *testing.T) {
	u := NewFrom(1, 2, 3)
	short := NewFrom(1, 2)

	assert.PanicsWithValue(t, ErrShape, func() { u.Add(short) })
	assert.PanicsWithValue(t, ErrShape, func() { u.Sub(short) })
	assert.PanicsWithValue(t, ErrShape, func() { Inner(u, short) })
	assert.PanicsWithValue(t, ErrShape, func() { Cross(short, u) })
	assert.PanicsWithValue(t, ErrShape, func() { Det(u, u, short) })
}

func TestValueSemantics(t *testing.T) {
	u := NewFrom(1, 2, 3)
	v := NewFrom(3, 1, 2)

	_ = u.Add(v)
	_ = u.Scale(10)
	assert.Equal(t, []float64{1, 2, 3}, u.Raw(), "operands must not be modified")

	c := u.Clone()
	c.Set(0, 99)
	assert.Equal(t, 1.0, u.At(0))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[ 4 3 2 1 ]", NewFrom(4, 3, 2, 1).String())
	assert.Equal(t, "[ ]", New(0).String())
}
