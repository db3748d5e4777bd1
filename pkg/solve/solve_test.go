package solve

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSolution(t *testing.T) {
	s := Demo()
	x, err := s.Solve()
	require.NoError(t, err)

	// The demo system has the exact solution (4, 6, 2).
	require.Equal(t, 3, x.Len())
	assert.InDelta(t, 4, x.AtVec(0), 1e-6)
	assert.InDelta(t, 6, x.AtVec(1), 1e-6)
	assert.InDelta(t, 2, x.AtVec(2), 1e-6)

	assert.Less(t, s.Residual(x), 1e-8)
}

func TestNewSystemValidation(t *testing.T) {
	tests := []struct {
		name string
		n    int
		a    []float64
		b    []float64
	}{
		{"zero size", 0, nil, nil},
		{"short matrix", 2, []float64{1, 2, 3}, []float64{1, 2}},
		{"short rhs", 2, []float64{1, 2, 3, 4}, []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystem(tt.n, tt.a, tt.b)
			assert.Error(t, err)
		})
	}
}

func TestSolveSingular(t *testing.T) {
	s, err := NewSystem(2,
		[]float64{1, 2, 2, 4}, // rank 1
		[]float64{1, 2},
	)
	require.NoError(t, err)

	_, err = s.Solve()
	assert.Error(t, err)
}

func TestIdentitySystem(t *testing.T) {
	s, err := NewSystem(3,
		[]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[]float64{7, -3, 0.5},
	)
	require.NoError(t, err)

	x, err := s.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 7, x.AtVec(0), 1e-12)
	assert.InDelta(t, -3, x.AtVec(1), 1e-12)
	assert.InDelta(t, 0.5, x.AtVec(2), 1e-12)
}

func TestFprint(t *testing.T) {
	s := Demo()
	x, err := s.Solve()
	require.NoError(t, err)

	var buf bytes.Buffer
	s.Fprint(&buf, x)

	out := buf.String()
	assert.Contains(t, out, "Here is the matrix A:")
	assert.Contains(t, out, "Here is the vector b:")
	assert.Contains(t, out, "The solution is:")
	assert.Contains(t, out, "36.4")
}

func TestResult(t *testing.T) {
	s := Demo()
	x, err := s.Solve()
	require.NoError(t, err)

	res := s.Result(x)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 3, res.Cols)
	assert.Len(t, res.Matrix, 9)
	assert.Len(t, res.Solution, 3)
	assert.InDelta(t, 4, res.Solution[0], 1e-6)
	assert.Less(t, res.Residual, 1e-8)
}

func TestLoadSystemCSV(t *testing.T) {
	dir := t.TempDir()
	matrixPath := filepath.Join(dir, "a.csv")
	rhsPath := filepath.Join(dir, "b.csv")

	require.NoError(t, os.WriteFile(matrixPath, []byte("1.2,3.4,5.6\n7.8,9.0,1.2\n3.4,5.6,7.8\n"), 0o644))
	require.NoError(t, os.WriteFile(rhsPath, []byte("36.4\n87.6\n62.8\n"), 0o644))

	s, err := LoadSystemCSV(matrixPath, rhsPath)
	require.NoError(t, err)

	x, err := s.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 4, x.AtVec(0), 1e-6)
	assert.InDelta(t, 6, x.AtVec(1), 1e-6)
	assert.InDelta(t, 2, x.AtVec(2), 1e-6)
}

func TestLoadSystemCSVErrors(t *testing.T) {
	dir := t.TempDir()
	matrixPath := filepath.Join(dir, "a.csv")
	rhsPath := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(rhsPath, []byte("1\n2\n"), 0o644))

	t.Run("missing matrix", func(t *testing.T) {
		_, err := LoadSystemCSV(filepath.Join(dir, "nope.csv"), rhsPath)
		assert.Error(t, err)
	})

	t.Run("ragged matrix", func(t *testing.T) {
		require.NoError(t, os.WriteFile(matrixPath, []byte("1,2\n3\n"), 0o644))
		_, err := LoadSystemCSV(matrixPath, rhsPath)
		assert.Error(t, err)
	})

	t.Run("bad float", func(t *testing.T) {
		require.NoError(t, os.WriteFile(matrixPath, []byte("1,x\n3,4\n"), 0o644))
		_, err := LoadSystemCSV(matrixPath, rhsPath)
		assert.Error(t, err)
	})
}
