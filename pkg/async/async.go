package async

import (
	"context"
	"sync"
)

// Result pairs the outcome of one computation with the error it produced.
type Result[U any] struct {
	Value U
	Err   error
}

// Map applies fn to every element of items with at most workers concurrent
// executions and returns one Result per element, in input order.
//
// With workers <= 1 the elements run sequentially on the calling goroutine.
// A cancelled context stops new elements from starting; their Result.Err is
// set to the context error. The returned slice always has len(items) entries.
func Map[T, U any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (U, error)) []Result[U] {
	results := make([]Result[U], len(items))
	if len(items) == 0 {
		return results
	}

	if workers <= 1 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				continue
			}
			results[i].Value, results[i].Err = fn(ctx, item)
		}
		return results
	}

	if workers > len(items) {
		workers = len(items)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, item := range items {
		i, item := i, item
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			// Skip work that has not started once the context is done.
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Value, results[i].Err = fn(ctx, item)
		}()
	}
	wg.Wait()

	return results
}
