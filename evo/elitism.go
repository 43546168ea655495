// Package evo - elitism: the best individuals survive unchanged.
package evo

import "sort"

// Elite returns deep copies of the e individuals with the lowest fitness,
// ordered best-first; ties break by original population order (stable).
// Copies are independent — inserting them into the next generation cannot
// alias chromosome storage across generations.
//
// Carrying e ≥ 1 elites guarantees the best-known fitness never worsens
// between generations.
//
// Errors: ErrEmptyPopulation on an empty population,
// ErrInvalidOptions when e < 0 or e > len(pop).
//
// Complexity: O(P log P) time, O(P) space.
func Elite(pop Population, e int) ([]Individual, error) {
	if len(pop) == 0 {
		return nil, ErrEmptyPopulation
	}
	if e < 0 || e > len(pop) {
		return nil, ErrInvalidOptions
	}

	// Rank indices, not individuals, to keep tie-breaking stable and avoid
	// copying the whole population.
	idxs := make([]int, len(pop))
	var i int
	for i = range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return pop[idxs[a]].Fitness < pop[idxs[b]].Fitness
	})

	out := make([]Individual, e)
	for i = 0; i < e; i++ {
		out[i] = pop[idxs[i]].Clone()
	}

	return out, nil
}
