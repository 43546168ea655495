// Package matrix - CSV cost-matrix parser.
//
// The accepted format is the classic "one row per city" layout:
//
//	0,3,4,2
//	3,0,4,6
//	4,4,0,5
//	2,6,5,0
//
// Cells are parsed as float64; surrounding whitespace is tolerated.
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromCSV parses a square cost matrix from CSV input.
//
// Contract:
//   - Every record must contain exactly as many cells as there are records
//     (square shape); otherwise ErrNonSquare.
//   - Every cell must parse as a float64; otherwise ErrBadCSV.
//   - Empty input yields ErrBadCSV.
//
// FromCSV performs no semantic validation beyond shape and parseability;
// run ValidateDistances on the result before solving.
//
// Complexity: O(n²) time and space.
func FromCSV(r io.Reader) (*Dense, error) {
	reader := csv.NewReader(r)
	// Rows may legitimately differ in length only as a user error; we check
	// squareness ourselves to return the package sentinel instead of a
	// csv.ErrFieldCount wrapper.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}
	n := len(records)
	if n == 0 {
		return nil, ErrBadCSV
	}

	out, derr := NewDense(n, n)
	if derr != nil {
		return nil, derr
	}

	var (
		i, j int
		cell string
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(records[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			cell = strings.TrimSpace(records[i][j])
			v, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrBadCSV, i, j, cell)
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}
