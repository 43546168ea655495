// Package evo - fitness evaluation: closed-tour length over a shared
// read-only distance matrix.
package evo

import (
	"math"

	"github.com/katalvlaran/evotsp/matrix"
)

// roundScale controls cost stabilization precision (1e-9). It trims tiny
// floating-point drift across platforms without affecting optimality.
const roundScale = 1e9

// Evaluator computes tour lengths against one validated distance matrix.
// The matrix is treated as immutable for the lifetime of the evaluator
// and may be shared by any number of concurrent TourLength calls.
type Evaluator struct {
	dist matrix.Matrix
	n    int
}

// NewEvaluator validates m as a symmetric distance matrix (square, n ≥ 2,
// zero diagonal, finite non-negative entries) and wraps it for evaluation.
// The matrix is retained by reference; callers must not mutate it while
// the evaluator is in use.
//
// Errors: sentinels from the matrix package (ErrNonSquare, ErrAsymmetry, …).
//
// Complexity: O(n²) validation, O(1) afterwards.
func NewEvaluator(m matrix.Matrix) (*Evaluator, error) {
	n, err := matrix.ValidateDistances(m, true)
	if err != nil {
		return nil, err
	}

	return &Evaluator{dist: m, n: n}, nil
}

// Cities returns the instance size n. Complexity: O(1).
func (e *Evaluator) Cities() int { return e.n }

// TourLength returns the total length of the closed tour encoded by c:
// the sum of distances between consecutive genes plus the distance from
// the last city back to the first. Deterministic, side-effect free.
//
// Errors: ErrDimensionMismatch when c.Len() != matrix order.
//
// Complexity: O(n) time, O(1) space.
func (e *Evaluator) TourLength(c Chromosome) (float64, error) {
	if len(c) != e.n {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i    int
		u, v Gene
		w    float64
		err  error
	)
	for i = 0; i < e.n; i++ {
		u = c[i]
		v = c[(i+1)%e.n] // wrap: last city returns to the first
		w, err = e.dist.At(u, v)
		if err != nil {
			// Out-of-range genes violate the dimension contract.
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
