// Package evo - tour representation: genes and chromosomes.
package evo

import "math/rand"

// Gene is the atomic unit of representation: a city index in [0..n-1].
type Gene = int

// Chromosome is an ordered sequence of genes encoding a visiting order.
// Invariant: a Chromosome of length n is a permutation of {0..n-1} —
// exactly one occurrence of each city, no omissions, no duplicates.
// Every constructor and operator in this package preserves the invariant.
type Chromosome []Gene

// NewChromosome builds a Chromosome from an explicit gene order supplied
// by a caller. The input is copied, never retained.
//
// Errors: ErrInvalidChromosome when genes is empty or not a permutation
// of {0..len(genes)-1}.
//
// Complexity: O(n) time, O(n) space.
func NewChromosome(genes []Gene) (Chromosome, error) {
	c := make(Chromosome, len(genes))
	copy(c, genes)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// RandomChromosome returns a uniformly random permutation of the n city
// indices, drawn from rng (nil rng ⇒ default deterministic stream).
//
// Errors: ErrInvalidChromosome when n ≤ 0.
//
// Complexity: O(n) time, O(n) space.
func RandomChromosome(n int, rng *rand.Rand) (Chromosome, error) {
	if n <= 0 {
		return nil, ErrInvalidChromosome
	}
	c := make(Chromosome, n)

	var i int
	for i = 0; i < n; i++ {
		c[i] = i
	}
	shuffleInPlace(c, rng)

	return c, nil
}

// Validate checks the permutation invariant: every city index in
// [0..len(c)-1] appears exactly once.
//
// Errors: ErrInvalidChromosome on empty input, out-of-range genes or
// duplicates.
//
// Complexity: O(n) time, O(n) space.
func (c Chromosome) Validate() error {
	n := len(c)
	if n == 0 {
		return ErrInvalidChromosome
	}
	seen := make([]bool, n)

	var (
		i int
		g Gene
	)
	for i = 0; i < n; i++ {
		g = c[i]
		if g < 0 || g >= n {
			return ErrInvalidChromosome
		}
		if seen[g] {
			return ErrInvalidChromosome
		}
		seen[g] = true
	}

	return nil
}

// Len returns the number of genes (cities). Complexity: O(1).
func (c Chromosome) Len() int { return len(c) }

// Gene returns the city index at position i; positions outside [0..Len)
// yield -1 rather than a panic.
//
// Complexity: O(1).
func (c Chromosome) Gene(i int) Gene {
	if i < 0 || i >= len(c) {
		return -1
	}

	return c[i]
}

// Clone returns an independent copy of the chromosome.
// Complexity: O(n).
func (c Chromosome) Clone() Chromosome {
	if c == nil {
		return nil
	}
	cp := make(Chromosome, len(c))
	copy(cp, c)

	return cp
}

// Genes returns a copy of the gene order; the receiver's backing storage
// is never exposed.
//
// Complexity: O(n).
func (c Chromosome) Genes() []Gene {
	return []Gene(c.Clone())
}
