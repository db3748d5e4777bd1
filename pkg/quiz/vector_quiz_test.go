package quiz

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVectorQuizAllPass(t *testing.T) {
	var buf bytes.Buffer
	res := RunVectorQuiz(&buf, DefaultTolerance)

	require.NotNil(t, res)
	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 8, res.Passed)
	assert.Equal(t, DefaultTolerance, res.Tolerance)

	names := make([]string, 0, len(res.Checks))
	for _, c := range res.Checks {
		assert.True(t, c.Passed, c.Name)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"u+v (addition)",
		"u-v (subtraction)",
		"u*a (right scalar multiplication)",
		"norm(u) (Euclidean norm)",
		"inner(u,v) (inner product)",
		"cross(u,v) (cross product)",
		"det(u,v,w) (determinant)",
		"a*u (left scalar multiplication)",
	}, names)
}

func TestRunVectorQuizTranscript(t *testing.T) {
	var buf bytes.Buffer
	RunVectorQuiz(&buf, DefaultTolerance)

	g := goldie.New(t)
	g.Assert(t, "vector_quiz", buf.Bytes())
}

func TestRunVectorQuizImpossibleTolerance(t *testing.T) {
	// A tolerance tighter than float64 rounding fails the norm check
	// but leaves the exact integer checks passing.
	var buf bytes.Buffer
	res := RunVectorQuiz(&buf, 1e-12)

	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 7, res.Passed)
	assert.Contains(t, buf.String(), "PASSED 7 OF 8 TESTS")
}
