// Package evo implements a generational evolutionary algorithm for the
// Travelling Salesman Problem on permutation-encoded chromosomes.
//
// 🚀 What is evo?
//
//	A deterministic, allocation-conscious EA core:
//	  • Chromosome — a permutation of city indices with a hard validity invariant
//	  • Evaluator  — closed-tour length over a shared read-only distance matrix
//	  • Tournament — fitness-biased parent selection (lower tour length wins)
//	  • Crossover  — order crossover (OX), the permutation-safe recombination
//	  • Mutate     — swap mutation, trivially permutation-preserving
//	  • Elite      — deep-copied best individuals that survive every generation
//	  • Solve      — the generational loop with stagnation/max-generation stopping
//	  • Exhaustive — brute-force optimum for small instances (tests, calibration)
//
// ⚙️ Usage:
//
//	m, _ := matrix.FromPoints(cities)
//	opts := evo.DefaultOptions()
//	opts.Seed = 42
//	res, err := evo.Solve(context.Background(), m, opts)
//	// res.Tour is a closed tour [0 … 0], res.Cost its total length.
//
// Determinism:
//   - Every stochastic step draws from one *rand.Rand created from
//     Options.Seed; two runs with identical inputs produce identical
//     populations, traces and results.
//   - Optional parallel fitness evaluation (Options.Workers) does not
//     perturb results: breeding stays sequential on the seeded RNG and
//     evaluation is a pure function written back by index.
//
// Errors:
//   - No logging, no panics on user input — only sentinel errors from
//     errors.go, matched with errors.Is. All contract violations are
//     detected eagerly; nothing is retried.
package evo
