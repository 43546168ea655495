// Package evo - order crossover (OX) for permutation chromosomes.
//
// Naive single-point crossover on permutations produces invalid tours
// (duplicate and missing cities), so it is deliberately absent from this
// package. OX copies a contiguous window from one parent and fills the
// remaining positions with the other parent's genes in their relative
// order, which keeps both children valid permutations by construction.
package evo

import "math/rand"

// Crossover recombines two parent chromosomes. With probability prob it
// applies order crossover and returns two freshly built children; with
// probability 1−prob it returns independent copies of the parents
// unchanged. Parents are never mutated. Both children satisfy the
// permutation invariant whenever the parents do.
//
// Errors: ErrLengthMismatch when the parents differ in length,
// ErrInvalidChromosome on empty parents, ErrInvalidOptions when prob is
// outside [0,1].
//
// Complexity: O(n) time, O(n) space.
func Crossover(p1, p2 Chromosome, prob float64, rng *rand.Rand) (Chromosome, Chromosome, error) {
	if len(p1) != len(p2) {
		return nil, nil, ErrLengthMismatch
	}
	if len(p1) == 0 {
		return nil, nil, ErrInvalidChromosome
	}
	if prob < 0 || prob > 1 {
		return nil, nil, ErrInvalidOptions
	}
	r := ensureRNG(rng)

	// Skip branch: copies of the parents, no recombination.
	// A 1-city chromosome has nothing to recombine either.
	if len(p1) < 2 || r.Float64() >= prob {
		return p1.Clone(), p2.Clone(), nil
	}

	// Shared cut window [a, b) for both children, length ≥ 1.
	n := len(p1)
	a := r.Intn(n)
	b := r.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		b++
	}

	c1 := orderCrossover(p1, p2, a, b)
	c2 := orderCrossover(p2, p1, a, b)

	return c1, c2, nil
}

// orderCrossover builds one OX child: positions [a, b) come from keeper,
// the remaining positions are filled with filler's genes in filler order,
// starting the scan at b and wrapping, skipping genes already placed.
//
// The free positions are exactly the contiguous wrap-around block
// [b..n) ∪ [0..a), and the number of unplaced filler genes matches it, so
// a single write cursor suffices.
//
// Complexity: O(n) time, O(n) space.
func orderCrossover(keeper, filler Chromosome, a, b int) Chromosome {
	var (
		n     = len(keeper)
		child = make(Chromosome, n)
		used  = make([]bool, n)
		i     int
		g     Gene
		pos   = b % n // next free position, wrapping
	)

	for i = a; i < b; i++ {
		g = keeper[i]
		child[i] = g
		used[g] = true
	}

	for i = 0; i < n; i++ {
		g = filler[(b+i)%n]
		if used[g] {
			continue
		}
		child[pos] = g
		used[g] = true
		pos = (pos + 1) % n
	}

	return child
}
