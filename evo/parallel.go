// Package evo - fitness evaluation fan-out.
//
// Evaluation of distinct individuals is independent: the distance matrix
// is read-only and TourLength consumes no randomness. Workers pull
// indices from a channel and write fitness back by index, so the outcome
// is bit-identical to a serial pass regardless of scheduling.
package evo

import "sync"

// evaluateSlice computes fitness for pop[from:]. With workers ≤ 1 it runs
// serially; otherwise it fans out across min(workers, len) goroutines.
// The first evaluation error wins; pop is left partially updated only on
// that error path, and callers discard it then.
//
// Complexity: O((P−from)·n) total work.
func evaluateSlice(eval *Evaluator, pop Population, from, workers int) error {
	if from < 0 {
		from = 0
	}
	count := len(pop) - from
	if count <= 0 {
		return nil
	}

	if workers <= 1 || count == 1 {
		var (
			i   int
			f   float64
			err error
		)
		for i = from; i < len(pop); i++ {
			f, err = eval.TourLength(pop[i].Chromosome)
			if err != nil {
				return err
			}
			pop[i].Fitness = f
		}

		return nil
	}

	if workers > count {
		workers = count
	}

	var (
		idx      = make(chan int)
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				f, err := eval.TourLength(pop[i].Chromosome)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					continue
				}
				pop[i].Fitness = f
			}
		}()
	}
	for i := from; i < len(pop); i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return firstErr
}
