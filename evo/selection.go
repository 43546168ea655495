// Package evo - tournament selection.
package evo

import "math/rand"

// minTournamentSize is the smallest meaningful tournament: size 1 would
// degenerate into uniform selection with no fitness pressure.
const minTournamentSize = 2

// Tournament draws `size` individuals uniformly at random (with
// replacement) from pop and returns the index of the fittest contender
// (lowest fitness; first-drawn wins ties). The draw is stochastic but
// fully reproducible given a fixed rng.
//
// Errors: ErrEmptyPopulation on an empty population,
// ErrInvalidOptions when size < 2.
//
// Complexity: O(size) time, O(1) space.
func Tournament(pop Population, size int, rng *rand.Rand) (int, error) {
	if len(pop) == 0 {
		return 0, ErrEmptyPopulation
	}
	if size < minTournamentSize {
		return 0, ErrInvalidOptions
	}
	r := ensureRNG(rng)

	var (
		best    = r.Intn(len(pop))
		bestFit = pop[best].Fitness
		i, cand int
		candFit float64
	)
	for i = 1; i < size; i++ {
		cand = r.Intn(len(pop))
		candFit = pop[cand].Fitness
		if candFit < bestFit {
			best = cand
			bestFit = candFit
		}
	}

	return best, nil
}

// SelectParents runs `count` independent tournaments of the given size
// and returns deep copies of the winners. Winners are drawn with
// replacement: the same individual may parent several offspring.
//
// Errors: ErrEmptyPopulation, ErrInvalidOptions (size < 2 or count < 0).
//
// Complexity: O(count·size + count·n) time.
func SelectParents(pop Population, count, size int, rng *rand.Rand) ([]Individual, error) {
	if count < 0 {
		return nil, ErrInvalidOptions
	}
	r := ensureRNG(rng)
	out := make([]Individual, 0, count)

	var (
		i   int
		idx int
		err error
	)
	for i = 0; i < count; i++ {
		idx, err = Tournament(pop, size, r)
		if err != nil {
			return nil, err
		}
		out = append(out, pop[idx].Clone())
	}

	return out, nil
}
