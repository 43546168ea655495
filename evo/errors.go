// Package evo: sentinel error set.
//
// All operators and the engine MUST return these sentinels and tests MUST
// check them via errors.Is. They mark caller-contract or configuration
// violations, never transient faults, so none of them is retried.
package evo

import "errors"

var (
	// ErrInvalidChromosome is returned when a gene sequence is not a
	// permutation of the full city index set (duplicate, missing or
	// out-of-range genes), or when an empty chromosome is supplied.
	ErrInvalidChromosome = errors.New("evo: chromosome is not a valid permutation")

	// ErrDimensionMismatch indicates a chromosome whose length differs from
	// the distance-matrix order.
	ErrDimensionMismatch = errors.New("evo: chromosome length does not match matrix order")

	// ErrLengthMismatch is returned by crossover when the parents differ in length.
	ErrLengthMismatch = errors.New("evo: parent chromosomes differ in length")

	// ErrEmptyPopulation is returned when selection or elitism is asked to
	// draw from a population with zero individuals.
	ErrEmptyPopulation = errors.New("evo: population is empty")

	// ErrNoTerminationCriterion is returned at engine init when neither a
	// maximum generation count nor a stagnation limit is configured; the
	// engine refuses to loop forever.
	ErrNoTerminationCriterion = errors.New("evo: no termination criterion configured")

	// ErrInvalidOptions marks an out-of-range configuration value
	// (population size, elite count, tournament size, probabilities, workers).
	ErrInvalidOptions = errors.New("evo: invalid options")

	// ErrTooManyCities guards the exhaustive solver: factorial enumeration
	// is refused above MaxExhaustiveCities.
	ErrTooManyCities = errors.New("evo: instance too large for exhaustive search")
)
