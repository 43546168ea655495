// Package evo - swap mutation.
package evo

import "math/rand"

// Mutate applies swap mutation with per-individual probability prob: with
// probability prob two distinct positions chosen uniformly at random are
// exchanged, otherwise the chromosome is returned unchanged. The input is
// never mutated; the caller always receives an independent copy and
// should relinquish its reference to the pre-mutation chromosome.
//
// A swap of two positions trivially preserves the permutation invariant.
//
// Errors: ErrInvalidChromosome on an empty chromosome,
// ErrInvalidOptions when prob is outside [0,1].
//
// Complexity: O(n) time (the copy), O(1) beyond it.
func Mutate(c Chromosome, prob float64, rng *rand.Rand) (Chromosome, error) {
	if len(c) == 0 {
		return nil, ErrInvalidChromosome
	}
	if prob < 0 || prob > 1 {
		return nil, ErrInvalidOptions
	}
	r := ensureRNG(rng)

	out := c.Clone()
	if len(out) < 2 || r.Float64() >= prob {
		return out, nil
	}

	// Two distinct positions: draw j from [0, n-1) and shift past i.
	i := r.Intn(len(out))
	j := r.Intn(len(out) - 1)
	if j >= i {
		j++
	}
	out[i], out[j] = out[j], out[i]

	return out, nil
}
