package lib

import (
	"log"
	"math/rand"
	"runtime"
	"sync"
)

// A partition is an independent slice of the sampling or estimation work.
// Its run function must only read shared state (the filtered graph and
// the selection) and derive all randomness from the rand it is handed.
type partition struct {
	index int
	run   func(rng *rand.Rand) (*partial, error)
}

// partitionRand derives the random source for a partition from the run
// seed and the partition index. The derivation depends on nothing else,
// so a retried partition reproduces the same draws and the overall result
// is independent of the worker count.
func partitionRand(seed int64, index int) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ int64((uint64(index)+1)*0x9e3779b97f4a7c15)))
}

// runPartitions executes the partitions on a pool of workers and folds
// the partial results in partition order, so that the aggregate does not
// depend on how many workers ran or in which order they finished. A
// failing partition is retried once; if the retry fails too, the run
// continues without that partition and reports a warning.
func runPartitions(parts []partition, workers int, seed int64) (*partial, []string) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(parts) {
		workers = len(parts)
	}

	results := make([]*partial, len(parts))
	failures := make([]error, len(parts))
	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				p := parts[i]
				res, err := p.run(partitionRand(seed, p.index))
				if err != nil {
					partitionRetries.Inc()
					log.Printf("partition %d failed (%v), retrying", p.index, err)
					res, err = p.run(partitionRand(seed, p.index))
				}
				if err != nil {
					failures[i] = &WorkerError{Partition: p.index, Err: err}
					continue
				}
				results[i] = res
			}
		}()
	}
	for i := range parts {
		work <- i
	}
	close(work)
	wg.Wait()

	total := newPartial()
	var warnings []string
	for i, res := range results {
		if failures[i] != nil {
			warnings = append(warnings, failures[i].Error())
			continue
		}
		total.merge(res)
	}
	return total, warnings
}
