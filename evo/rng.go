// Package evo - RNG plumbing shared by all stochastic operators.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Explicitness: every stochastic operator receives *rand.Rand as an
//     argument; the package never touches the global math/rand state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The engine draws from a single
//     RNG on one goroutine; parallel workers only evaluate fitness, which
//     consumes no randomness.
package evo

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// ensureRNG substitutes the default deterministic stream for a nil RNG so
// that exported operators stay total without hiding global state.
//
// Complexity: O(1).
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rngFromSeed(0)
	}

	return rng
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var (
		r = ensureRNG(rng)
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
