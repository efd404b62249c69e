// Package async provides a generic fan-out helper for running independent
// computations over a slice with bounded concurrency.
//
// The package is centred around Map, which applies a function to every element
// of a slice and returns one Result per element, in input order. Each Result
// carries its own error so a single failure never discards the remaining work.
// Concurrency is capped by the workers argument; with one worker or fewer the
// elements are processed inline on the calling goroutine, which keeps
// single-worker runs deterministic.
//
// # Usage
//
//	results := async.Map(ctx, urls, 8, func(ctx context.Context, u string) (string, error) {
//	    return fetch(ctx, u)
//	})
//	for i, res := range results {
//	    if res.Err != nil {
//	        log.Printf("item %d failed: %v", i, res.Err)
//	        continue
//	    }
//	    use(res.Value)
//	}
//
// # Cancellation
//
// Map checks the context before starting each element. Once the context is
// cancelled, elements that have not started receive the context error as their
// Result.Err; elements already running finish normally. Map always returns a
// slice with the same length as its input.
package async
