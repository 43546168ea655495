// Package evo_test shares small helpers across the *_test.go files in
// this package: canonical toy instances with hand-checkable optima and a
// couple of constants used as determinism anchors.
package evo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/matrix"
)

const (
	// seedDet is the canonical deterministic seed used across tests.
	seedDet = int64(42)

	// optSquare is the optimal closed-tour length of the unit square:
	// its perimeter.
	optSquare = 4.0

	// costDelta is the comparison tolerance for costs; evaluator output
	// is stabilized to 1e-9, so this is generous.
	costDelta = 1e-6
)

// optSquareCenter is the optimal closed-tour length of the unit square
// plus its center: three unit sides plus two half-diagonal legs.
var optSquareCenter = 3 + math.Sqrt2

// triangle345 returns three cities forming a 3-4-5 right triangle; every
// closed tour over three cities has the same length, 12.
func triangle345() []matrix.Point {
	return []matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
}

// unitSquare returns the four corners of the unit square in CCW order.
func unitSquare() []matrix.Point {
	return []matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// squarePlusCenter returns the unit square corners plus the center point —
// the 5-city instance used for end-to-end engine checks.
func squarePlusCenter() []matrix.Point {
	return append(unitSquare(), matrix.Point{X: 0.5, Y: 0.5})
}

// circleCities returns n cities evenly spaced on the unit circle; handy
// for larger deterministic instances.
func circleCities(n int) []matrix.Point {
	pts := make([]matrix.Point, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = matrix.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	return pts
}

// mustMatrix builds a Euclidean distance matrix or fails the test.
func mustMatrix(t *testing.T, pts []matrix.Point) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromPoints(pts)
	require.NoError(t, err)

	return m
}

// newRng returns a fresh deterministic RNG for operator-level tests.
func newRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
