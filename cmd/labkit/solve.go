package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gfxcourse/labkit/internal/types"
	"github.com/gfxcourse/labkit/pkg/solve"
)

var (
	solveMatrixFile string
	solveRHSFile    string
	solveOutput     string
)

// solveCmd solves a dense linear system with QR
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a dense linear system Ax = b with Householder QR",
	Long: `Solve a dense linear system with a QR factorization and print the
matrix, the right-hand side, and the solution. Without --matrix and
--rhs the built-in 3x3 course example is solved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		matrixFile, rhsFile := solveMatrixFile, solveRHSFile
		if matrixFile == "" && cfg != nil {
			matrixFile = cfg.Solve.MatrixFile
			rhsFile = cfg.Solve.RHSFile
		}
		if (matrixFile == "") != (rhsFile == "") {
			return fmt.Errorf("--matrix and --rhs must be given together")
		}

		var (
			s   *solve.System
			err error
		)
		if matrixFile != "" {
			s, err = solve.LoadSystemCSV(matrixFile, rhsFile)
			if err != nil {
				return err
			}
		} else {
			s = solve.Demo()
		}

		start := time.Now()
		x, err := s.Solve()
		if err != nil {
			return err
		}
		s.Fprint(os.Stdout, x)

		if solveOutput != "" {
			run := &types.RunResult{
				ID:      fmt.Sprintf("solve_%d", time.Now().Unix()),
				Type:    "linear_solve",
				Status:  "completed",
				Results: s.Result(x),
				Metadata: types.RunMetadata{
					InputFiles:  inputFiles(matrixFile, rhsFile),
					OutputFiles: []string{solveOutput},
					Version:     version,
				},
				Timestamp: time.Now(),
				Duration:  time.Since(start),
			}
			if err := writeRunResult(solveOutput, run); err != nil {
				return err
			}
			log.Printf("Solve result written to %s", solveOutput)
		}
		return nil
	},
}

func inputFiles(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	solveCmd.Flags().StringVar(&solveMatrixFile, "matrix", "",
		"CSV file with the matrix, one row per line")
	solveCmd.Flags().StringVar(&solveRHSFile, "rhs", "",
		"CSV file with the right-hand side, one value per line")
	solveCmd.Flags().StringVar(&solveOutput, "output", "",
		"write the run result as JSON to this file")
}
