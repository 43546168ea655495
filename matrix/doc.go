// Package matrix provides distance-matrix storage and validation for
// evolutionary TSP solvers.
//
// It contains:
//
//   - Matrix — the minimal read/write interface consumed by the evo package.
//
//   - Dense — a row-major n×n implementation with bounds-checked accessors.
//
//   - FromPoints — build a symmetric Euclidean distance matrix from 2D
//     city coordinates.
//
//   - FromCSV — parse a square cost matrix from CSV rows of numbers
//     (one row per city, comma-separated distances).
//
//   - ValidateDistances — enforce the distance-matrix contract: square,
//     n ≥ 2, zero diagonal, finite non-negative entries, and (optionally)
//     symmetry within a structural tolerance.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - Deterministic: fixed loop orders, no map iteration, no randomness.
//   - All returned matrices are independent copies; builders never retain
//     their inputs.
package matrix
