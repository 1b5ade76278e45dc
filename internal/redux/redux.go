// Package redux implements a single-source-of-truth state container: a
// store holding one immutable state tree, replaced wholesale by a pure
// reducer for each dispatched action, with an ordered middleware chain in
// front of the reducer and synchronous change notification behind it.
//
// A store is owned by one goroutine. Dispatch must be called from that
// goroutine; GetState and Subscribe are safe from any goroutine. Work that
// completes on other goroutines hands its actions back to the owner (see
// the effects runtime) instead of dispatching directly.
package redux

import "errors"

var (
	// ErrReentrantDispatch is returned when Dispatch is called while the
	// reducer is running.
	ErrReentrantDispatch = errors.New("redux: reducers may not dispatch actions")

	// ErrNilAction is returned when Dispatch is called with a nil action.
	ErrNilAction = errors.New("redux: nil action")
)

// Action is an immutable message describing an intent or an outcome. Its
// Type is unique across the action catalog.
type Action interface {
	Type() string
}

// Reducer computes the next state from the current state and an action. It
// must be pure: no I/O, no clock reads, no randomness. Actions it does not
// recognize return the input state unchanged.
type Reducer[S any] func(state S, action Action) S

// Dispatch sends an action one step further down the chain.
type Dispatch func(Action) error

// Middleware wraps the next dispatch step. It may inspect, transform or
// swallow an action, forward it by calling next, or trigger side effects
// before or after forwarding.
type Middleware func(next Dispatch) Dispatch

// Chain composes middleware into one. The first argument becomes the
// outermost middleware and sees every action first:
//
//	Chain(Logging, Navigation, Effects)(reduce)
//
// is equivalent to:
//
//	Logging(Navigation(Effects(reduce)))
func Chain(middlewares ...Middleware) Middleware {
	return func(next Dispatch) Dispatch {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
