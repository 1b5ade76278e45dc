// Package fanout runs one function across a slice of items with bounded
// concurrency, preserving input order in the results. The readiness probe
// uses it to check dependencies in parallel and the CLI uses it to fetch
// several pages at once.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrPanicked wraps a value recovered from fn.
var ErrPanicked = errors.New("fanout: item panicked")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// calls. Results are returned in the same order as the input items.
//
// An item still waiting for a slot when ctx is done records ctx.Err() and
// fn is not called for it. A panic in fn is recorded as an ErrPanicked
// result for that item only.
//
// Run blocks until every item has a result. If items is empty, it returns
// an empty non-nil slice immediately. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))
	results := make([]Result[R], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}
			defer sem.Release(1)

			results[i] = call(ctx, item, fn)
		})
	}

	wg.Wait()
	return results
}

// Errors returns the non-nil errors of results joined, or nil.
func Errors[R any](results []Result[R]) error {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanicked, p)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
