// Package evo - solver results and tour construction.
package evo

// Result holds the outcome of a solver run.
type Result struct {
	// Tour is the best tour found, closed and rotated to start at city 0:
	// for n cities, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Cost is the total length of Tour (the best fitness seen).
	Cost float64

	// Generations is the number of completed generations (0 for Exhaustive).
	Generations int

	// Evaluations counts fitness-function invocations.
	Evaluations int

	// Trace carries per-generation statistics when Options.CollectTrace is
	// set; entry 0 describes the initial population. Nil otherwise.
	Trace []GenerationStats
}

// closedTour converts a chromosome into the canonical closed-tour form:
// rotated so city 0 leads, with the closing 0 appended.
//
// Complexity: O(n) time, O(n) space.
func closedTour(c Chromosome) []int {
	var (
		n     = len(c)
		pivot = 0
		i     int
	)
	for i = 0; i < n; i++ {
		if c[i] == 0 {
			pivot = i
			break
		}
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = c[(pivot+i)%n]
	}
	out[n] = 0

	return out
}
