// Package evotsp is an in-memory toolkit for solving the Travelling
// Salesman Problem with a generational evolutionary algorithm.
//
// 🚀 What is evotsp?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Distance matrices: dense storage, Euclidean & CSV builders, strict validation
//		• Permutation chromosomes: safe construction, invariant checks, cloning
//		• Operators: tournament selection, order crossover (OX), swap mutation
//		• Elitism: best individuals survive every generation, copied not aliased
//		• A generational engine: seeded RNG, stagnation/max-generation stopping,
//		  per-generation statistics trace, optional parallel fitness evaluation
//		• An exhaustive baseline solver for small instances (tests & calibration)
//
// ✨ Why choose evotsp?
//
//   - Reproducible – every stochastic step flows through one seeded RNG
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden runtime deps
//   - Honest contracts – each exported function documents complexity and errors
//
// Everything is organized under two subpackages:
//
//	matrix/ — distance matrix storage, builders and validation
//	evo/    — chromosomes, operators, the generational engine
//
// Quick ASCII example:
//
//	    3───2
//	    │ 4 │        five cities: a unit square plus its center;
//	    0───1        the optimal closed tour is 3 + √2
//
// Dive into examples/ for runnable programs and evo/example_test.go for
// copy-paste snippets.
//
//	go get github.com/katalvlaran/evotsp
package evotsp
