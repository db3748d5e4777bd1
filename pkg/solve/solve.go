// Package solve wraps a dense linear-system solve, Ax = b, behind the
// small surface the numerical linear algebra exercise needs: build a
// system, factorize with Householder QR, report the solution and its
// residual.
package solve

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/gfxcourse/labkit/internal/types"
)

// System represents a dense linear system Ax = b.
type System struct {
	A *mat.Dense
	B *mat.VecDense
}

// NewSystem creates a system from row-major matrix data and a
// right-hand side. The matrix must be square and b must have one entry
// per row.
func NewSystem(n int, a, b []float64) (*System, error) {
	if n <= 0 {
		return nil, fmt.Errorf("system size must be positive, got %d", n)
	}
	if len(a) != n*n {
		return nil, fmt.Errorf("matrix needs %d entries, got %d", n*n, len(a))
	}
	if len(b) != n {
		return nil, fmt.Errorf("rhs needs %d entries, got %d", n, len(b))
	}
	return &System{
		A: mat.NewDense(n, n, a),
		B: mat.NewVecDense(n, b),
	}, nil
}

// Demo returns the 3x3 system from the course exercise:
//
//	1.2 x + 3.4 y + 5.6 z = 36.4
//	7.8 x + 9.0 y + 1.2 z = 87.6
//	3.4 x + 5.6 y + 7.8 z = 62.8
func Demo() *System {
	s, _ := NewSystem(3,
		[]float64{
			1.2, 3.4, 5.6,
			7.8, 9.0, 1.2,
			3.4, 5.6, 7.8,
		},
		[]float64{36.4, 87.6, 62.8},
	)
	return s
}

// Solve factorizes A with Householder QR and solves for x. Singular or
// near-singular systems return an error.
func (s *System) Solve() (*mat.VecDense, error) {
	var qr mat.QR
	qr.Factorize(s.A)

	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, s.B); err != nil {
		return nil, fmt.Errorf("qr solve failed: %w", err)
	}
	return &x, nil
}

// Residual returns the Euclidean norm of Ax - b for a candidate
// solution x.
func (s *System) Residual(x mat.Vector) float64 {
	var r mat.VecDense
	r.MulVec(s.A, x)
	r.SubVec(&r, s.B)
	return mat.Norm(&r, 2)
}

// Fprint writes the matrix, the right-hand side, and the solution in
// the layout the exercise prints.
func (s *System) Fprint(w io.Writer, x mat.Vector) {
	fmt.Fprintf(w, "Here is the matrix A:\n%v\n", mat.Formatted(s.A, mat.Squeeze()))
	fmt.Fprintf(w, "Here is the vector b:\n%v\n", mat.Formatted(s.B, mat.Squeeze()))
	if x != nil {
		fmt.Fprintf(w, "The solution is:\n%v\n", mat.Formatted(x, mat.Squeeze()))
	}
}

// Result packages the solve outcome for JSON output.
func (s *System) Result(x *mat.VecDense) *types.SolveResult {
	rows, cols := s.A.Dims()
	res := &types.SolveResult{
		Rows:     rows,
		Cols:     cols,
		Matrix:   append([]float64(nil), s.A.RawMatrix().Data...),
		RHS:      append([]float64(nil), s.B.RawVector().Data...),
		Residual: s.Residual(x),
	}
	res.Solution = append([]float64(nil), x.RawVector().Data...)
	return res
}
