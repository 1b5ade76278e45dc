package redux_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

type add struct{ N int }

func (add) Type() string { return "test/ADD" }

type noop struct{}

func (noop) Type() string { return "test/NOOP" }

func counter(state int, a redux.Action) int {
	if a, ok := a.(add); ok {
		return state + a.N
	}
	return state
}

// --- Dispatch ---

func TestStore_DispatchAppliesReducer(t *testing.T) {
	t.Parallel()

	s := redux.New(counter, 1)

	require.NoError(t, s.Dispatch(add{N: 2}))
	assert.Equal(t, 3, s.GetState())

	require.NoError(t, s.Dispatch(noop{}))
	assert.Equal(t, 3, s.GetState())
}

func TestStore_DispatchNilAction(t *testing.T) {
	t.Parallel()

	s := redux.New(counter, 0)

	err := s.Dispatch(nil)
	assert.ErrorIs(t, err, redux.ErrNilAction)
}

func TestStore_ReentrantDispatchFailsFast(t *testing.T) {
	t.Parallel()

	var (
		s        *redux.Store[int]
		innerErr error
	)
	reducer := func(state int, a redux.Action) int {
		if _, ok := a.(add); ok {
			innerErr = s.Dispatch(noop{})
			return state + 100
		}
		return state
	}
	s = redux.New(reducer, 0)

	err := s.Dispatch(add{N: 1})

	require.ErrorIs(t, err, redux.ErrReentrantDispatch)
	require.ErrorIs(t, innerErr, redux.ErrReentrantDispatch)
	assert.Equal(t, 0, s.GetState(), "state must not change when the reducer re-enters")
}

func TestStore_ReentrantFlagClearsAfterFailure(t *testing.T) {
	t.Parallel()

	var s *redux.Store[int]
	reenter := true
	reducer := func(state int, a redux.Action) int {
		if reenter {
			_ = s.Dispatch(noop{})
		}
		return counter(state, a)
	}
	s = redux.New(reducer, 0)

	require.Error(t, s.Dispatch(add{N: 1}))

	reenter = false
	require.NoError(t, s.Dispatch(add{N: 5}))
	assert.Equal(t, 5, s.GetState())
}

// --- Subscribe ---

func TestStore_SubscribersNotifiedInOrder(t *testing.T) {
	t.Parallel()

	s := redux.New(counter, 0)
	var calls []string

	s.Subscribe(func() { calls = append(calls, "first") })
	s.Subscribe(func() { calls = append(calls, "second") })

	require.NoError(t, s.Dispatch(add{N: 1}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestStore_SubscriberSeesNewState(t *testing.T) {
	t.Parallel()

	s := redux.New(counter, 0)
	var seen int
	s.Subscribe(func() { seen = s.GetState() })

	require.NoError(t, s.Dispatch(add{N: 7}))
	assert.Equal(t, 7, seen)
}

func TestStore_Unsubscribe(t *testing.T) {
	t.Parallel()

	s := redux.New(counter, 0)
	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	require.NoError(t, s.Dispatch(add{N: 1}))
	unsubscribe()
	unsubscribe()
	require.NoError(t, s.Dispatch(add{N: 1}))

	assert.Equal(t, 1, calls)
}

func TestStore_DispatchFromSubscriberIsQueued(t *testing.T) {
	t.Parallel()

	s := redux.New(counter, 0)
	var order []string

	s.Subscribe(func() {
		order = append(order, "A saw "+strconv.Itoa(s.GetState()))
		if s.GetState() == 1 {
			require.NoError(t, s.Dispatch(add{N: 10}))
		}
	})
	s.Subscribe(func() {
		order = append(order, "B saw "+strconv.Itoa(s.GetState()))
	})

	require.NoError(t, s.Dispatch(add{N: 1}))

	assert.Equal(t, []string{"A saw 1", "B saw 1", "A saw 11", "B saw 11"}, order)
	assert.Equal(t, 11, s.GetState())
}

// --- Middleware ---

func TestStore_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) redux.Middleware {
		return func(next redux.Dispatch) redux.Dispatch {
			return func(a redux.Action) error {
				order = append(order, name+" before")
				err := next(a)
				order = append(order, name+" after")
				return err
			}
		}
	}

	s := redux.New(counter, 0, tag("outer"), tag("inner"))
	s.Subscribe(func() { order = append(order, "notify") })

	require.NoError(t, s.Dispatch(add{N: 1}))
	assert.Equal(t, []string{"outer before", "inner before", "notify", "inner after", "outer after"}, order)
}

func TestStore_MiddlewareShortCircuit(t *testing.T) {
	t.Parallel()

	swallow := func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			if _, ok := a.(add); ok {
				return nil
			}
			return next(a)
		}
	}
	s := redux.New(counter, 0, swallow)
	notified := false
	s.Subscribe(func() { notified = true })

	require.NoError(t, s.Dispatch(add{N: 1}))
	assert.Equal(t, 0, s.GetState())
	assert.False(t, notified, "short-circuited actions must not notify")
}

func TestStore_MiddlewareTransform(t *testing.T) {
	t.Parallel()

	double := func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			if v, ok := a.(add); ok {
				return next(add{N: v.N * 2})
			}
			return next(a)
		}
	}
	s := redux.New(counter, 0, double)

	require.NoError(t, s.Dispatch(add{N: 2}))
	assert.Equal(t, 4, s.GetState())
}

func TestStore_MiddlewareErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	fail := func(_ redux.Dispatch) redux.Dispatch {
		return func(redux.Action) error { return boom }
	}
	s := redux.New(counter, 0, fail)

	assert.ErrorIs(t, s.Dispatch(add{N: 1}), boom)
}
