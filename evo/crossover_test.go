package evo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/evo"
)

// TestCrossover_Rejects covers the contract-violation surface.
func TestCrossover_Rejects(t *testing.T) {
	p4, err := evo.NewChromosome([]int{0, 1, 2, 3})
	require.NoError(t, err)
	p5, err := evo.NewChromosome([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	_, _, err = evo.Crossover(p4, p5, 0.5, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrLengthMismatch)

	_, _, err = evo.Crossover(evo.Chromosome{}, evo.Chromosome{}, 0.5, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrInvalidChromosome)

	_, _, err = evo.Crossover(p4, p4, 1.5, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrInvalidOptions)

	_, _, err = evo.Crossover(p4, p4, -0.1, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrInvalidOptions)
}

// TestCrossover_ProbabilityZero must return children identical to the
// parents, with independent storage.
func TestCrossover_ProbabilityZero(t *testing.T) {
	p1, err := evo.NewChromosome([]int{3, 1, 0, 2})
	require.NoError(t, err)
	p2, err := evo.NewChromosome([]int{0, 2, 1, 3})
	require.NoError(t, err)

	c1, c2, err := evo.Crossover(p1, p2, 0, newRng(seedDet))
	require.NoError(t, err)
	assert.Equal(t, p1, c1)
	assert.Equal(t, p2, c2)

	// No aliasing: mutating a child leaves the parent intact.
	c1[0], c1[1] = c1[1], c1[0]
	assert.Equal(t, evo.Chromosome{3, 1, 0, 2}, p1)
}

// TestCrossover_ProbabilityOne_InvariantSweep applies OX across many
// seeds and random parent pairs; every child must be a valid permutation
// and the parents must never be touched.
func TestCrossover_ProbabilityOne_InvariantSweep(t *testing.T) {
	const n = 12

	var seed int64
	for seed = 1; seed <= 60; seed++ {
		rng := newRng(seed)

		p1, err := evo.RandomChromosome(n, rng)
		require.NoError(t, err)
		p2, err := evo.RandomChromosome(n, rng)
		require.NoError(t, err)
		keep1, keep2 := p1.Clone(), p2.Clone()

		c1, c2, err := evo.Crossover(p1, p2, 1, rng)
		require.NoError(t, err)

		assert.NoError(t, c1.Validate(), "seed %d: child 1 broke the permutation invariant", seed)
		assert.NoError(t, c2.Validate(), "seed %d: child 2 broke the permutation invariant", seed)
		assert.Equal(t, keep1, p1, "seed %d: parent 1 was mutated", seed)
		assert.Equal(t, keep2, p2, "seed %d: parent 2 was mutated", seed)
	}
}

// TestCrossover_TwoCities is the smallest recombinable instance.
func TestCrossover_TwoCities(t *testing.T) {
	p1, err := evo.NewChromosome([]int{0, 1})
	require.NoError(t, err)
	p2, err := evo.NewChromosome([]int{1, 0})
	require.NoError(t, err)

	c1, c2, err := evo.Crossover(p1, p2, 1, newRng(seedDet))
	require.NoError(t, err)
	assert.NoError(t, c1.Validate())
	assert.NoError(t, c2.Validate())
}

// TestCrossover_Deterministic verifies seed-for-seed reproducibility.
func TestCrossover_Deterministic(t *testing.T) {
	p1, err := evo.NewChromosome([]int{4, 2, 0, 3, 1, 5})
	require.NoError(t, err)
	p2, err := evo.NewChromosome([]int{5, 0, 1, 2, 3, 4})
	require.NoError(t, err)

	a1, a2, err := evo.Crossover(p1, p2, 1, newRng(seedDet))
	require.NoError(t, err)
	b1, b2, err := evo.Crossover(p1, p2, 1, newRng(seedDet))
	require.NoError(t, err)

	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)
}
