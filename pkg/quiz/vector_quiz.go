package quiz

import (
	"fmt"
	"io"

	"github.com/gfxcourse/labkit/internal/types"
	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// RunVectorQuiz checks each vector operation against known reference
// values, writing the transcript to w. This is not a formal guarantee
// that the operations are correct; just a spot check that things are
// on the right track.
func RunVectorQuiz(w io.Writer, tolerance float64) *types.QuizResult {
	// Constants used for testing
	u := vecmath.NewFrom(1, 2, 3)
	v := vecmath.NewFrom(3, 1, 2)
	wv := vecmath.NewFrom(5, 3, 7)
	a := 4.0

	fmt.Fprintf(w, "u: %s\n", formatVec(u))
	fmt.Fprintf(w, "v: %s\n", formatVec(v))
	fmt.Fprintf(w, "w: %s\n", formatVec(wv))
	fmt.Fprintf(w, "a: %s\n\n", formatScalar(a))

	c := NewChecker(w, tolerance)

	c.CheckVec("u+v (addition)", u.Add(v), vecmath.NewFrom(4, 3, 5))
	c.CheckVec("u-v (subtraction)", u.Sub(v), vecmath.NewFrom(-2, 1, 1))
	c.CheckVec("u*a (right scalar multiplication)", u.Scale(a), vecmath.NewFrom(4, 8, 12))
	c.CheckScalar("norm(u) (Euclidean norm)", vecmath.Norm(u), 3.74166)
	c.CheckScalar("inner(u,v) (inner product)", vecmath.Inner(u, v), 11)
	c.CheckVec("cross(u,v) (cross product)", vecmath.Cross(u, v), vecmath.NewFrom(1, 7, -5))
	c.CheckScalar("det(u,v,w) (determinant)", vecmath.Det(u, v, wv), -9)
	c.CheckVec("a*u (left scalar multiplication)", vecmath.Scale(a, u), vecmath.NewFrom(4, 8, 12))

	fmt.Fprintf(w, "PASSED %d OF %d TESTS\n", c.Passed(), c.Total())

	return &types.QuizResult{
		Checks:    c.Results(),
		Passed:    c.Passed(),
		Total:     c.Total(),
		Tolerance: c.tolerance,
	}
}
