package genetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
)

// --- Parallel Initialization ---

// Populate runs initialize n times on at most parallelism goroutines. Every member
// gets its own stream split from rng before fan-out, so results depend only on
// the seed. Results keep index order; the lowest-index error is returned.
func Populate[S Solution](ctx context.Context, n, parallelism int, rng *rand.Rand, initialize InitializerFunc[S]) ([]S, error) {
	if n <= 0 {
		return []S{}, nil
	}

	streams := make([]*rand.Rand, n)
	for i := range streams {
		streams[i] = SplitRand(rng)
	}

	members := make([]S, n)
	errs := make([]error, n)
	semaphore := make(chan struct{}, max(parallelism, 1))

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return members, err
		}

		select {
		case <-ctx.Done():
			wg.Wait()
			return members, ctx.Err()
		case semaphore <- struct{}{}: // Acquire semaphore
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-semaphore }() // Release semaphore

			members[idx], errs[idx] = initialize(streams[idx])
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return members, fmt.Errorf("member %d: %w", i, err)
		}
	}
	return members, nil
}
