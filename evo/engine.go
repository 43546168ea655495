// Package evo - the generational loop.
//
// One generation derives Population(t+1) from Population(t) in fixed
// order: elitism → (selection → crossover → mutation)* → evaluation →
// wholesale replacement. No individual from a past generation reappears
// except through elitism, and the next population becomes visible only
// after every member has been evaluated.
package evo

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/evotsp/matrix"
)

// Solve runs the evolutionary algorithm against the distance matrix dist.
//
// Contract:
//   - dist must satisfy the symmetric distance contract (see
//     matrix.ValidateDistances); the matrix is read-only during the run.
//   - opts must name at least one termination criterion.
//   - ctx is consulted at generation boundaries only; on cancellation the
//     best result found so far is returned together with ctx's error.
//
// The returned Result reports the best individual seen across ALL
// generations, tracked incrementally — with elitism this normally equals
// the final population's best, but the engine does not rely on that.
//
// Errors: ErrInvalidOptions, ErrNoTerminationCriterion, matrix sentinels
// from evaluator construction, and context errors.
//
// Complexity: O(G·P·(n + K)) time for G generations, population P,
// tournament size K, instance size n.
func Solve(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	eval, err := NewEvaluator(dist)
	if err != nil {
		return Result{}, err
	}

	var (
		n   = eval.Cities()
		p   = opts.PopulationSize
		rng = rngFromSeed(opts.Seed)
	)

	// Init: P random chromosomes, all evaluated before the loop starts.
	cur := make(Population, p)
	var i int
	for i = 0; i < p; i++ {
		c, cerr := RandomChromosome(n, rng)
		if cerr != nil {
			return Result{}, cerr
		}
		cur[i] = Individual{Chromosome: c, Fitness: UnevaluatedFitness}
	}
	if err = evaluateSlice(eval, cur, 0, opts.Workers); err != nil {
		return Result{}, err
	}
	evals := p

	best, err := cur.Best()
	if err != nil {
		return Result{}, err
	}

	var trace []GenerationStats
	if opts.CollectTrace {
		trace = append(trace, statsOf(0, cur))
	}

	result := func(gen int) Result {
		return Result{
			Tour:        closedTour(best.Chromosome),
			Cost:        best.Fitness,
			Generations: gen,
			Evaluations: evals,
			Trace:       trace,
		}
	}

	var (
		gen   int
		stale int
	)
	for {
		// Termination first, so MaxGenerations=G runs exactly G generations.
		if opts.MaxGenerations > 0 && gen >= opts.MaxGenerations {
			break
		}
		if opts.StagnationLimit > 0 && stale >= opts.StagnationLimit {
			break
		}
		if cerr := ctx.Err(); cerr != nil {
			return result(gen), cerr
		}

		next, berr := breed(cur, eval, opts, rng)
		if berr != nil {
			return Result{}, berr
		}
		evals += p - opts.EliteCount

		// Wholesale replacement; the old generation is dropped, not linked.
		cur = next
		gen++

		improved := false
		if cand, cerr := cur.Best(); cerr == nil && cand.Fitness < best.Fitness {
			best = cand
			improved = true
		}
		if improved {
			stale = 0
		} else {
			stale++
		}

		if opts.CollectTrace {
			trace = append(trace, statsOf(gen, cur))
		}
	}

	return result(gen), nil
}

// breed produces the next generation: elites survive verbatim, offspring
// fill the remaining P−E slots, and every new individual is evaluated
// before the population is returned (no partial-generation visibility).
//
// Complexity: O(P·(n + K)) time.
func breed(cur Population, eval *Evaluator, opts Options, rng *rand.Rand) (Population, error) {
	p := opts.PopulationSize

	elite, err := Elite(cur, opts.EliteCount)
	if err != nil {
		return nil, err
	}
	next := make(Population, 0, p)
	next = append(next, elite...)

	var (
		i1, i2 int
		c1, c2 Chromosome
		m1, m2 Chromosome
	)
	for len(next) < p {
		if i1, err = Tournament(cur, opts.TournamentSize, rng); err != nil {
			return nil, err
		}
		if i2, err = Tournament(cur, opts.TournamentSize, rng); err != nil {
			return nil, err
		}

		c1, c2, err = Crossover(cur[i1].Chromosome, cur[i2].Chromosome, opts.CrossoverRate, rng)
		if err != nil {
			return nil, err
		}

		if m1, err = Mutate(c1, opts.MutationRate, rng); err != nil {
			return nil, err
		}
		next = append(next, Individual{Chromosome: m1, Fitness: UnevaluatedFitness})

		// A single child suffices when exactly one slot remains.
		if len(next) < p {
			if m2, err = Mutate(c2, opts.MutationRate, rng); err != nil {
				return nil, err
			}
			next = append(next, Individual{Chromosome: m2, Fitness: UnevaluatedFitness})
		}
	}

	// Elites keep their cached fitness; only offspring are (re)evaluated.
	if err = evaluateSlice(eval, next, opts.EliteCount, opts.Workers); err != nil {
		return nil, err
	}

	return next, nil
}
