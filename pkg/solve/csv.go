package solve

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadSystemCSV reads a square system from two CSV files: one float
// per cell for the matrix, one value per row for the right-hand side.
func LoadSystemCSV(matrixPath, rhsPath string) (*System, error) {
	rows, err := readFloatRecords(matrixPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load matrix: %w", err)
	}
	n := len(rows)
	a := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix row %d has %d entries, want %d", i+1, len(row), n)
		}
		a = append(a, row...)
	}

	rhsRows, err := readFloatRecords(rhsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rhs: %w", err)
	}
	b := make([]float64, 0, n)
	for _, row := range rhsRows {
		b = append(b, row...)
	}

	return NewSystem(n, a, b)
}

func readFloatRecords(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no data in %s", path)
	}

	out := make([][]float64, 0, len(records))
	for i, record := range records {
		row := make([]float64, 0, len(record))
		for j, field := range record {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("record %d field %d: %w", i+1, j+1, err)
			}
			row = append(row, x)
		}
		out = append(out, row)
	}
	return out, nil
}
