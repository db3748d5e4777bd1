package vecmath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrShape is the panic value for operations on vectors whose
	// dimensions do not match, or for the 3-vector-only operations
	// applied to a vector of another dimension.
	ErrShape = errors.New("vecmath: dimension mismatch")

	// ErrIndexOutOfRange is the panic value for coordinate access
	// outside [0, Dim).
	ErrIndexOutOfRange = errors.New("vecmath: index out of range")
)

// Vec represents a vector in R^n as an ordered list of coordinates.
// The dimension is fixed when the vector is created; arithmetic
// operations return fresh vectors and never modify their operands.
type Vec struct {
	u []float64
}

// New creates a zero vector with n coordinates.
func New(n int) Vec {
	if n < 0 {
		panic(ErrShape)
	}
	return Vec{u: make([]float64, n)}
}

// NewFrom creates a vector from the given coordinates.
func NewFrom(coords ...float64) Vec {
	u := make([]float64, len(coords))
	copy(u, coords)
	return Vec{u: u}
}

// Dim returns the number of coordinates in the vector.
func (v Vec) Dim() int {
	return len(v.u)
}

// At returns the ith coordinate. Coordinates use 0-based indexing.
func (v Vec) At(i int) float64 {
	if i < 0 || i >= len(v.u) {
		panic(ErrIndexOutOfRange)
	}
	return v.u[i]
}

// Set assigns the ith coordinate.
func (v Vec) Set(i int, x float64) {
	if i < 0 || i >= len(v.u) {
		panic(ErrIndexOutOfRange)
	}
	v.u[i] = x
}

// Clone returns an independent copy of the vector.
func (v Vec) Clone() Vec {
	return NewFrom(v.u...)
}

// Raw returns the backing coordinate slice. Mutating it mutates the
// vector; callers that need a snapshot should Clone first.
func (v Vec) Raw() []float64 {
	return v.u
}

// Add returns the sum of v and w.
func (v Vec) Add(w Vec) Vec {
	checkDims(v, w)
	sum := New(len(v.u))
	for i := range v.u {
		sum.u[i] = v.u[i] + w.u[i]
	}
	return sum
}

// Sub returns v minus w.
func (v Vec) Sub(w Vec) Vec {
	checkDims(v, w)
	diff := New(len(v.u))
	for i := range v.u {
		diff.u[i] = v.u[i] - w.u[i]
	}
	return diff
}

// Scale returns v scaled by a.
func (v Vec) Scale(a float64) Vec {
	product := New(len(v.u))
	for i := range v.u {
		product.u[i] = a * v.u[i]
	}
	return product
}

// Scale returns the vector u scaled by the factor a. It is the
// left-multiplication form a*u; the method form covers u*a. Both
// produce the same result.
func Scale(a float64, u Vec) Vec {
	return u.Scale(a)
}

// Norm returns the Euclidean norm of u.
func Norm(u Vec) float64 {
	var sum float64
	for _, x := range u.u {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Inner returns the Euclidean inner product of u and v.
func Inner(u, v Vec) float64 {
	checkDims(u, v)
	var sum float64
	for i := range u.u {
		sum += u.u[i] * v.u[i]
	}
	return sum
}

// Cross returns the cross product of u and v. It is defined only for
// 3-vectors; any other dimension panics with ErrShape.
func Cross(u, v Vec) Vec {
	if u.Dim() != 3 || v.Dim() != 3 {
		panic(ErrShape)
	}
	return NewFrom(
		u.u[1]*v.u[2]-u.u[2]*v.u[1],
		u.u[2]*v.u[0]-u.u[0]*v.u[2],
		u.u[0]*v.u[1]-u.u[1]*v.u[0],
	)
}

// Det returns the determinant of the three 3-vectors u, v, and w,
// following the right-hand rule. It equals Inner(Cross(u, v), w).
func Det(u, v, w Vec) float64 {
	if u.Dim() != 3 || v.Dim() != 3 || w.Dim() != 3 {
		panic(ErrShape)
	}
	return Inner(Cross(u, v), w)
}

// String renders the vector as "[ x0 x1 ... ]".
func (v Vec) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, x := range v.u {
		fmt.Fprintf(&b, "%g ", x)
	}
	b.WriteString("]")
	return b.String()
}

func checkDims(u, v Vec) {
	if len(u.u) != len(v.u) {
		panic(ErrShape)
	}
}
