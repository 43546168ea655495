// Package evo - per-generation population statistics.
package evo

import "math"

// GenerationStats summarizes the fitness distribution of one generation.
// Std is the population standard deviation (divisor N, not N−1).
type GenerationStats struct {
	Generation int
	Best       float64
	Mean       float64
	Std        float64
}

// statsOf computes the summary for a fully evaluated population.
//
// Complexity: O(P) time, O(1) space.
func statsOf(gen int, pop Population) GenerationStats {
	var (
		n    = float64(len(pop))
		best = math.Inf(1)
		sum  float64
		i    int
	)
	for i = range pop {
		sum += pop[i].Fitness
		if pop[i].Fitness < best {
			best = pop[i].Fitness
		}
	}
	mean := sum / n

	var sq float64
	for i = range pop {
		sq += (pop[i].Fitness - mean) * (pop[i].Fitness - mean)
	}

	return GenerationStats{
		Generation: gen,
		Best:       best,
		Mean:       mean,
		Std:        math.Sqrt(sq / n),
	}
}
