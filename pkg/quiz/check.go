// Package quiz implements the reference-value self-check harness used
// by the coursework exercises: computed values are compared against
// known correct values within a small tolerance, and a transcript of
// each comparison is written to an output stream.
package quiz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/gfxcourse/labkit/internal/types"
	"github.com/gfxcourse/labkit/pkg/vecmath"
)

// DefaultTolerance bounds how far a computed value may drift from the
// reference before a check fails. Different implementations may produce
// slightly different values (order of operations), so exact equality is
// never required.
const DefaultTolerance = 1e-5

// Checker compares computed values against reference values and keeps
// a tally of how many checks passed.
type Checker struct {
	w         io.Writer
	tolerance float64
	results   []types.CheckResult
}

// NewChecker creates a checker writing its transcript to w. A
// non-positive tolerance falls back to DefaultTolerance.
func NewChecker(w io.Writer, tolerance float64) *Checker {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Checker{w: w, tolerance: tolerance}
}

// CheckScalar compares a computed scalar against its reference value.
func (c *Checker) CheckScalar(name string, got, want float64) bool {
	return c.record(name, formatScalar(got), formatScalar(want), math.Abs(got-want))
}

// CheckVec compares a computed vector against its reference value. The
// difference is the sum of absolute coordinate differences; a dimension
// mismatch always fails.
func (c *Checker) CheckVec(name string, got, want vecmath.Vec) bool {
	if got.Dim() != want.Dim() {
		return c.record(name, formatVec(got), formatVec(want), math.Inf(1))
	}
	d := floats.Distance(got.Raw(), want.Raw(), 1)
	return c.record(name, formatVec(got), formatVec(want), d)
}

func (c *Checker) record(name, got, want string, diff float64) bool {
	passed := diff < c.tolerance

	fmt.Fprintf(c.w, "%s\n", name)
	fmt.Fprintf(c.w, "YOUR CODE: %s\n", got)
	fmt.Fprintf(c.w, "REFERENCE: %s\n", want)
	if passed {
		fmt.Fprintf(c.w, "  CORRECT? YES\n\n")
	} else {
		fmt.Fprintf(c.w, "  CORRECT? NO\n\n")
	}

	c.results = append(c.results, types.CheckResult{
		Name:      name,
		Computed:  got,
		Reference: want,
		Passed:    passed,
	})
	return passed
}

// Passed returns the number of checks that have passed so far.
func (c *Checker) Passed() int {
	n := 0
	for _, r := range c.results {
		if r.Passed {
			n++
		}
	}
	return n
}

// Total returns the number of checks run so far.
func (c *Checker) Total() int {
	return len(c.results)
}

// Results returns the per-check records in run order.
func (c *Checker) Results() []types.CheckResult {
	out := make([]types.CheckResult, len(c.results))
	copy(out, c.results)
	return out
}

// formatScalar renders with 6 significant digits, matching the
// reference transcript the course publishes.
func formatScalar(x float64) string {
	return fmt.Sprintf("%.6g", x)
}

func formatVec(v vecmath.Vec) string {
	var b strings.Builder
	b.WriteString("[ ")
	for i := 0; i < v.Dim(); i++ {
		fmt.Fprintf(&b, "%.6g ", v.At(i))
	}
	b.WriteString("]")
	return b.String()
}
