// Package matrix - Euclidean distance-matrix builder.
package matrix

import "math"

// Point is a 2D city coordinate.
type Point struct {
	X, Y float64
}

// FromPoints builds the symmetric Euclidean distance matrix of the given
// city coordinates: out[i][j] = ‖pts[i] − pts[j]‖₂.
//
// Contract:
//   - len(pts) ≥ 2 (a TSP instance needs at least two cities); otherwise
//     ErrDimensionMismatch.
//   - All coordinates must be finite; otherwise ErrNaNInf.
//
// The result is symmetric with a zero diagonal by construction, so it
// passes ValidateDistances(·, true) without further work.
//
// Complexity: O(n²) time and space.
func FromPoints(pts []Point) (*Dense, error) {
	n := len(pts)
	if n < 2 {
		return nil, ErrDimensionMismatch
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(pts[i].X) || !isFinite(pts[i].Y) {
			return nil, ErrNaNInf
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		dx, dy float64
		d      float64
	)
	// Upper triangle only; mirror into the lower triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i].X - pts[j].X
			dy = pts[i].Y - pts[j].Y
			d = math.Hypot(dx, dy)
			out.data[i*n+j] = d
			out.data[j*n+i] = d
		}
	}

	return out, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
