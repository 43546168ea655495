// Package evo - exhaustive baseline solver.
//
// Brute force enumerates every tour, so it is only feasible for tiny
// instances; its role here is to supply ground-truth optima for tests and
// for calibrating EA parameters on toy problems.
package evo

import (
	"context"
	"math"

	"github.com/katalvlaran/evotsp/matrix"
)

// MaxExhaustiveCities bounds Exhaustive: above this, (n−1)! tours are too
// many to enumerate in reasonable time.
const MaxExhaustiveCities = 11

// Exhaustive finds the optimal closed tour by enumerating all (n−1)!
// permutations with city 0 fixed first (rotations of a cycle have equal
// cost, so fixing the start loses nothing). Deterministic.
//
// Contract:
//   - dist must satisfy the symmetric distance contract.
//   - ctx is consulted between arrangements; on cancellation the search
//     stops and ctx's error is returned.
//
// Errors: matrix sentinels from validation, ErrTooManyCities, context errors.
//
// Complexity: O(n!) time, O(n) space.
func Exhaustive(ctx context.Context, dist matrix.Matrix) (Result, error) {
	eval, err := NewEvaluator(dist)
	if err != nil {
		return Result{}, err
	}
	n := eval.Cities()
	if n > MaxExhaustiveCities {
		return Result{}, ErrTooManyCities
	}

	var (
		perm     = make(Chromosome, n)
		bestPerm = make(Chromosome, n)
		bestCost = math.Inf(1)
		evals    int
		i        int
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	visit := func() error {
		cost, terr := eval.TourLength(perm)
		if terr != nil {
			return terr
		}
		evals++
		if cost < bestCost {
			bestCost = cost
			copy(bestPerm, perm)
		}

		return nil
	}

	// Heap's algorithm over the tail perm[1..n-1]; position 0 stays city 0.
	// m counts the tail elements still being permuted.
	var permute func(m int) error
	permute = func(m int) error {
		if m <= 1 {
			return visit()
		}
		var j int
		for j = 0; j < m; j++ {
			if err := permute(m - 1); err != nil {
				return err
			}
			if j < m-1 {
				if cerr := ctx.Err(); cerr != nil {
					return cerr
				}
				if m%2 == 0 {
					perm[1+j], perm[m] = perm[m], perm[1+j]
				} else {
					perm[1], perm[m] = perm[m], perm[1]
				}
			}
		}

		return nil
	}
	if err = permute(n - 1); err != nil {
		return Result{}, err
	}

	return Result{
		Tour:        closedTour(bestPerm),
		Cost:        bestCost,
		Generations: 0,
		Evaluations: evals,
	}, nil
}
