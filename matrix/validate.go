// Package matrix - distance-matrix validation.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst-case where n is the matrix order; no hidden allocations.
package matrix

import "math"

// distTol is the structural tolerance for diagonal/symmetry checks.
// It is intentionally tight: distance matrices built by this package are
// exact, and externally supplied ones should be too.
const distTol = 1e-12

// ValidateDistances performs full distance-matrix validation:
//   - non-nil, square, n ≥ 2,
//   - diagonal ≈ 0 (|a_ii| ≤ tolerance), finite,
//   - no NaN/±Inf anywhere, no negative off-diagonal distances,
//   - if symmetric: |a_ij − a_ji| ≤ tolerance.
//
// Returns n (the matrix order) on success.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNonZeroDiagonal,
// ErrNaNInf, ErrNegativeWeight, ErrAsymmetry.
//
// Complexity: O(n²).
func ValidateDistances(m Matrix, symmetric bool) (int, error) {
	// Stage 1: shape.
	if m == nil {
		return 0, ErrDimensionMismatch
	}
	nr, nc := m.Rows(), m.Cols()
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		// A 1×1 instance has no tour; treat as a dimension contract violation.
		return 0, ErrDimensionMismatch
	}
	n := nr

	var (
		i, j     int
		aij, aji float64
		err      error
	)

	// Stage 2: diagonal ≈ 0 and finite.
	for i = 0; i < n; i++ {
		aij, err = m.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if !isFinite(aij) {
			return 0, ErrNaNInf
		}
		if math.Abs(aij) > distTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Stage 3: off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, err = m.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if !isFinite(aij) {
				return 0, ErrNaNInf
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Stage 4: symmetry (upper triangle only).
	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij, _ = m.At(i, j)
				aji, _ = m.At(j, i)
				if math.Abs(aij-aji) > distTol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}
