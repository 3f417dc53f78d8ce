// Package parallel provides a small worker fan-out helper.
//
// It exists for work that is independent per item, such as training the
// per-class binary classifiers inside a multiclass ensemble. It is not a
// parallel SGD: a single classifier instance is always trained sequentially.
package parallel

import (
	"runtime"
	"sync"
)

// ForEach runs fn(i) for every i in [0, items) across at most NumCPU
// workers and waits for all of them to finish. fn must be safe to call
// concurrently for distinct indices.
func ForEach(items int, fn func(i int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	work := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}

	for i := 0; i < items; i++ {
		work <- i
	}
	close(work)
	wg.Wait()
}

// ForEachWithThreshold runs sequentially when items is at or below the
// threshold, avoiding goroutine overhead for small ensembles.
func ForEachWithThreshold(items, threshold int, fn func(i int)) {
	if items <= threshold {
		for i := 0; i < items; i++ {
			fn(i)
		}
		return
	}
	ForEach(items, fn)
}
