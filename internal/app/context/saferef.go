package appctx

import "sync"

// SafeRef is a value shared between the goroutine that owns a request's
// store and the routines it spawns. Reads take a shared lock and return a
// copy; writes are serialized.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef holding val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the current value.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Swap replaces the current value and returns the previous one.
func (r *SafeRef[T]) Swap(val T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.val
	r.val = val
	return prev
}

// Update applies fn to the value under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
