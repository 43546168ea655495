// Package matrix: sentinel error set.
//
// This file defines ONLY package-level sentinel errors used across the
// package. All builders and validators MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or cols ≤ 0),
	// or when a builder receives too few points to form a TSP instance.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates an input whose size contradicts the
	// expected matrix order (e.g. a ragged CSV row, or n < 2 for TSP).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeWeight signals a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("matrix: negative distance")

	// ErrNonZeroDiagonal signals that the diagonal must be ~0 (within tolerance)
	// but a non-zero entry was observed.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within tolerance")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the structural tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadCSV indicates malformed CSV input (non-numeric cell, empty input).
	ErrBadCSV = errors.New("matrix: malformed CSV distance data")
)
