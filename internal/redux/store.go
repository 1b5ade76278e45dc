package redux

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Store holds the current state tree of type S.
type Store[S any] struct {
	reducer  Reducer[S]
	dispatch Dispatch

	stateMu sync.RWMutex
	state   S

	reducing  atomic.Bool
	reentered atomic.Bool

	// notifying and pending are touched only by the owning goroutine.
	notifying bool
	pending   []Action

	subMu     sync.Mutex
	nextSubID int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// New creates a store with the given root reducer and initial state. The
// middleware run in argument order before the reducer sees an action.
func New[S any](reducer Reducer[S], initial S, middlewares ...Middleware) *Store[S] {
	s := &Store[S]{
		reducer: reducer,
		state:   initial,
	}
	s.dispatch = Chain(middlewares...)(s.reduce)
	return s
}

// GetState returns the current state tree. Callers must treat it as
// read-only.
func (s *Store[S]) GetState() S {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Dispatch sends a through the middleware chain to the reducer, installs the
// resulting state and notifies subscribers in subscription order.
//
// An action dispatched by a subscriber is queued and processed after the
// current notification round, so notifications never interleave.
func (s *Store[S]) Dispatch(a Action) error {
	if a == nil {
		return ErrNilAction
	}
	if s.reducing.Load() {
		s.reentered.Store(true)
		return fmt.Errorf("%w: got %q", ErrReentrantDispatch, a.Type())
	}
	if s.notifying {
		s.pending = append(s.pending, a)
		return nil
	}

	if err := s.dispatch(a); err != nil {
		return err
	}

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		if err := s.dispatch(next); err != nil {
			s.pending = nil
			return err
		}
	}
	return nil
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription; calling it more than once is a no-op.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// reduce is the innermost dispatch step.
func (s *Store[S]) reduce(a Action) error {
	prev := s.GetState()

	next := s.runReducer(prev, a)
	if s.reentered.Swap(false) {
		return fmt.Errorf("%w: while reducing %q", ErrReentrantDispatch, a.Type())
	}

	s.stateMu.Lock()
	s.state = next
	s.stateMu.Unlock()

	s.notify()
	return nil
}

func (s *Store[S]) runReducer(prev S, a Action) S {
	s.reducing.Store(true)
	defer s.reducing.Store(false)
	return s.reducer(prev, a)
}

func (s *Store[S]) notify() {
	s.subMu.Lock()
	snapshot := make([]listener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.subMu.Unlock()

	s.notifying = true
	defer func() { s.notifying = false }()

	for _, l := range snapshot {
		l.fn()
	}
}
