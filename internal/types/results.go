package types

import (
	"time"
)

// RunResult represents the outcome of one lab run (a quiz or a solve)
// as persisted by the --output flag.
type RunResult struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Status    string        `json:"status"`
	Results   any           `json:"results"`
	Metadata  RunMetadata   `json:"metadata"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// RunMetadata contains metadata about the run
type RunMetadata struct {
	InputFiles  []string       `json:"input_files,omitempty"`
	OutputFiles []string       `json:"output_files,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Version     string         `json:"version"`
}

// QuizResult represents the aggregate outcome of a quiz run
type QuizResult struct {
	Checks    []CheckResult `json:"checks"`
	Passed    int           `json:"passed"`
	Total     int           `json:"total"`
	Tolerance float64       `json:"tolerance"`
}

// CheckResult represents a single reference-value comparison
type CheckResult struct {
	Name      string `json:"name"`
	Computed  string `json:"computed"`
	Reference string `json:"reference"`
	Passed    bool   `json:"passed"`
}

// SolveResult represents the outcome of a linear-system solve
type SolveResult struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Matrix   []float64 `json:"matrix"` // row-major
	RHS      []float64 `json:"rhs"`
	Solution []float64 `json:"solution"`
	Residual float64   `json:"residual"`
}
