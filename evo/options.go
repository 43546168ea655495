// Package evo - engine configuration.
package evo

// Options configures the generational engine.
//
// Fields:
//   - PopulationSize  — number of individuals P per generation (≥ 2).
//   - EliteCount      — individuals copied unchanged into the next
//     generation, 0 ≤ E < P. E ≥ 1 makes the best-known
//     fitness monotonically non-worsening.
//   - TournamentSize  — contenders per selection tournament (≥ 2).
//   - CrossoverRate   — per-pair probability of order crossover, in [0,1].
//   - MutationRate    — per-individual probability of swap mutation, in [0,1].
//   - MaxGenerations  — hard generation cap; 0 disables the cap.
//   - StagnationLimit — stop after this many consecutive generations
//     without improvement of the best-known fitness;
//     0 disables the check.
//   - Seed            — RNG seed; 0 selects a fixed default stream, so
//     every configuration is reproducible by default.
//   - Workers         — goroutines for fitness evaluation; 0 or 1 means
//     serial. Results are identical either way.
//   - CollectTrace    — record per-generation statistics in Result.Trace.
//
// At least one of MaxGenerations and StagnationLimit must be positive;
// otherwise Solve fails with ErrNoTerminationCriterion before looping.
type Options struct {
	PopulationSize  int
	EliteCount      int
	TournamentSize  int
	CrossoverRate   float64
	MutationRate    float64
	MaxGenerations  int
	StagnationLimit int
	Seed            int64
	Workers         int
	CollectTrace    bool
}

// DefaultOptions returns the conventional defaults for permutation-encoded
// TSP. They are a starting point, not a tuning recommendation.
func DefaultOptions() Options {
	return Options{
		PopulationSize:  100,
		EliteCount:      2,
		TournamentSize:  3,
		CrossoverRate:   0.90,
		MutationRate:    0.10,
		MaxGenerations:  250,
		StagnationLimit: 0,
		Seed:            0,
		Workers:         0,
		CollectTrace:    false,
	}
}

// validate enforces the documented ranges.
//
// Errors: ErrInvalidOptions for out-of-range values,
// ErrNoTerminationCriterion when no stopping rule is configured.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.PopulationSize < 2 {
		return ErrInvalidOptions
	}
	if o.EliteCount < 0 || o.EliteCount >= o.PopulationSize {
		return ErrInvalidOptions
	}
	if o.TournamentSize < minTournamentSize {
		return ErrInvalidOptions
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return ErrInvalidOptions
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrInvalidOptions
	}
	if o.MaxGenerations < 0 || o.StagnationLimit < 0 || o.Workers < 0 {
		return ErrInvalidOptions
	}
	if o.MaxGenerations == 0 && o.StagnationLimit == 0 {
		return ErrNoTerminationCriterion
	}

	return nil
}
