package evo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evotsp/evo"
)

// rankedPopulation builds five evaluated individuals with distinct
// fitness values; index 1 is the best (fitness 1), index 0 the worst.
func rankedPopulation(t *testing.T) evo.Population {
	t.Helper()
	fits := []float64{5, 1, 4, 3, 2}
	pop := make(evo.Population, len(fits))
	var i int
	for i = range fits {
		c, err := evo.RandomChromosome(6, newRng(int64(i+1)))
		require.NoError(t, err)
		pop[i] = evo.Individual{Chromosome: c, Fitness: fits[i]}
	}

	return pop
}

// TestTournament_EmptyPopulation is the EmptyPopulation contract.
func TestTournament_EmptyPopulation(t *testing.T) {
	_, err := evo.Tournament(evo.Population{}, 3, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrEmptyPopulation)

	_, err = evo.SelectParents(evo.Population{}, 2, 3, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrEmptyPopulation)
}

// TestTournament_SizeTooSmall rejects degenerate tournaments.
func TestTournament_SizeTooSmall(t *testing.T) {
	pop := rankedPopulation(t)

	_, err := evo.Tournament(pop, 1, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrInvalidOptions)

	_, err = evo.Tournament(pop, 0, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrInvalidOptions)
}

// TestTournament_BiasTowardFitter runs many tournaments and checks that
// the best individual wins far more often than the worst. With size 3
// over 5 individuals the worst can only win when all three draws hit it
// (p = 1/125 per tournament), so the margin is enormous.
func TestTournament_BiasTowardFitter(t *testing.T) {
	const trials = 200
	pop := rankedPopulation(t)
	rng := newRng(seedDet)

	var (
		bestWins, worstWins int
		i, idx              int
		err                 error
	)
	for i = 0; i < trials; i++ {
		idx, err = evo.Tournament(pop, 3, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(pop))
		switch idx {
		case 1: // fitness 1 — the best
			bestWins++
		case 0: // fitness 5 — the worst
			worstWins++
		}
	}

	assert.Greater(t, bestWins, worstWins,
		"selection pressure inverted: best won %d, worst won %d", bestWins, worstWins)
	assert.Greater(t, bestWins, trials/4, "best individual should win often")
}

// TestTournament_Deterministic verifies reproducibility for a fixed seed.
func TestTournament_Deterministic(t *testing.T) {
	pop := rankedPopulation(t)

	a := make([]int, 0, 50)
	b := make([]int, 0, 50)
	rngA, rngB := newRng(seedDet), newRng(seedDet)
	var i, idx int
	var err error
	for i = 0; i < 50; i++ {
		idx, err = evo.Tournament(pop, 3, rngA)
		require.NoError(t, err)
		a = append(a, idx)
		idx, err = evo.Tournament(pop, 3, rngB)
		require.NoError(t, err)
		b = append(b, idx)
	}
	assert.Equal(t, a, b)
}

// TestSelectParents_CopiesWinners ensures parents are deep copies and the
// requested count is honored.
func TestSelectParents_CopiesWinners(t *testing.T) {
	pop := rankedPopulation(t)

	before := make([]evo.Chromosome, len(pop))
	var i int
	for i = range pop {
		before[i] = pop[i].Chromosome.Clone()
	}

	parents, err := evo.SelectParents(pop, 4, 3, newRng(seedDet))
	require.NoError(t, err)
	require.Len(t, parents, 4)

	// Mutating a parent must not write through to the population.
	for i = range parents {
		parents[i].Chromosome[0], parents[i].Chromosome[1] =
			parents[i].Chromosome[1], parents[i].Chromosome[0]
	}
	for i = range pop {
		assert.Equal(t, before[i], pop[i].Chromosome, "population individual %d was aliased", i)
	}

	_, err = evo.SelectParents(pop, -1, 3, newRng(seedDet))
	assert.ErrorIs(t, err, evo.ErrInvalidOptions)
}
