// Package evo - individuals and populations.
package evo

import "math"

// UnevaluatedFitness is the sentinel fitness carried by an Individual
// whose chromosome has not been evaluated yet. Any real tour length is
// finite and therefore strictly better.
const UnevaluatedFitness = math.MaxFloat64

// Individual is one candidate solution: a chromosome plus its cached
// fitness (total closed-tour length, lower is better). Fitness is derived
// data — it is recomputed whenever the chromosome changes and never
// mutated independently of it.
type Individual struct {
	Chromosome Chromosome
	Fitness    float64
}

// Clone returns a deep copy with independent chromosome storage.
// Complexity: O(n).
func (ind Individual) Clone() Individual {
	return Individual{Chromosome: ind.Chromosome.Clone(), Fitness: ind.Fitness}
}

// Population is the multiset of individuals alive in one generation.
// The engine owns the population exclusively and replaces it wholesale at
// generation boundaries; operators never mutate it in place.
type Population []Individual

// Best returns a deep copy of the individual with the lowest fitness;
// ties break toward the earliest position (stable).
//
// Errors: ErrEmptyPopulation.
//
// Complexity: O(P) time.
func (p Population) Best() (Individual, error) {
	if len(p) == 0 {
		return Individual{}, ErrEmptyPopulation
	}

	var (
		best = 0
		i    int
	)
	for i = 1; i < len(p); i++ {
		if p[i].Fitness < p[best].Fitness {
			best = i
		}
	}

	return p[best].Clone(), nil
}
