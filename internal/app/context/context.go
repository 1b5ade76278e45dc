// Package appctx provides request-scoped memoization for application
// services.
//
// A RequestContext is created per HTTP request by middleware and carried in
// the request's context.Context. Services look it up with FromContext and
// memoize lookups that several routines of the same request would otherwise
// repeat:
//
//	rc := appctx.New(ctx)
//	ctx = appctx.WithRequestContext(ctx, rc)
//
//	u, err := appctx.GetOrFetch(ctx, rc, "session:"+token, lookupSession)
//
// Unlike a plain map, GetOrFetch is safe for concurrent use: routines
// running on their own goroutines share one fetch per key.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type contextKey struct{}

// RequestContext is a request-scoped memo table. It embeds the request's
// context.Context so fetch functions observe its cancellation.
type RequestContext struct {
	context.Context

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// ready is closed once value and err are set.
type cacheEntry struct {
	ready chan struct{}
	value any
	err   error
}

// New creates a RequestContext wrapping ctx with an empty cache.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]*cacheEntry),
	}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(contextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the cached value for key, or calls fetchFn once with
// ctx to fetch and cache it. Concurrent callers for the same key wait for
// the first call until their own ctx is done. Errors are cached too, except
// those of a fetch whose ctx ended: the next caller fetches again.
//
// A nil rc disables memoization and calls fetchFn with ctx.
func GetOrFetch[T any](ctx context.Context, rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if rc == nil {
		return fetchFn(ctx)
	}

	rc.mu.Lock()
	entry, ok := rc.cache[key]
	if !ok {
		entry = &cacheEntry{ready: make(chan struct{})}
		rc.cache[key] = entry
	}
	rc.mu.Unlock()

	if !ok {
		val, err := fetchFn(ctx)
		entry.value, entry.err = val, err
		if err != nil && ctx.Err() != nil {
			rc.mu.Lock()
			if rc.cache[key] == entry {
				delete(rc.cache, key)
			}
			rc.mu.Unlock()
		}
		close(entry.ready)
		return val, err
	}

	var zero T
	select {
	case <-entry.ready:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	if entry.err != nil {
		return zero, entry.err
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

// Forget drops the cached result for key so the next GetOrFetch fetches
// again. Callers already waiting on the old entry still receive its result.
func (rc *RequestContext) Forget(key string) {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	delete(rc.cache, key)
	rc.mu.Unlock()
}
