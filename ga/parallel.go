package ga

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// workerCount is the number of goroutines forEachParallel spreads work
// across. Zero (its zero value) means "use runtime.NumCPU()". CLI layers
// configure this once via SetWorkerCount before calling Run, matching
// the teacher's own flag-settable workers var (cli.go: workers =
// runtime.NumCPU(), overridable by --workers).
var workerCount int32

// SetWorkerCount overrides the number of goroutines the mutation and
// evaluation regions (spec §5) fan out across. n <= 0 restores the
// runtime.NumCPU() default.
func SetWorkerCount(n int) {
	atomic.StoreInt32(&workerCount, int32(n))
}

// forEachParallel runs fn(i) for every i in [0, n) across a bounded pool
// of goroutines, one work item dispatched per index. Grounded on the
// teacher's own worker-pool shape (main.go: a fixed number of goroutines
// pulled from runtime.NumCPU, a sync.WaitGroup to join them), adapted
// here to fan out over a shared index channel instead of each goroutine
// owning its own independent work loop, since the mutation and
// evaluation regions (spec §5) are a one-shot barrier per generation
// rather than a long-running search.
func forEachParallel(n int, fn func(i int)) {
	if n == 0 {
		return
	}

	workers := int(atomic.LoadInt32(&workerCount))
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
