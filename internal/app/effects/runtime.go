// Package effects runs side-effect routines: the work that follows a
// request action (calling an API, then reporting the outcome as further
// actions).
//
// Routines run on their own goroutines and never touch the store. They
// hand actions to the Runtime with put; the goroutine that owns the store
// applies them in FIFO order by calling Settle or Run.
package effects

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// ErrRoutinePanicked wraps the value recovered from a panicking routine.
var ErrRoutinePanicked = errors.New("effects: routine panicked")

// Put hands an action back to the store owner.
type Put func(redux.Action)

// Routine is one side-effect process. Its error becomes the task result.
type Routine func(ctx context.Context, put Put) error

// Task is the future of a spawned routine.
type Task struct {
	name string
	done chan struct{}
	err  error
}

// Name returns the name the task was spawned with.
func (t *Task) Name() string { return t.name }

// Done is closed when the routine has returned.
func (t *Task) Done() <-chan struct{} { return t.done }

// Err returns the routine's result, or nil while it is still running.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the routine returns or ctx is done.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Runtime tracks in-flight routines and the actions they have put.
type Runtime struct {
	logger *slog.Logger

	mu       sync.Mutex
	queue    []redux.Action
	inflight int

	wakeup chan struct{}
}

// NewRuntime creates an idle runtime.
func NewRuntime(logger *slog.Logger) *Runtime {
	return &Runtime{
		logger: logger,
		wakeup: make(chan struct{}, 1),
	}
}

// Put queues a for the store owner. Safe for concurrent use.
func (r *Runtime) Put(a redux.Action) {
	r.mu.Lock()
	r.queue = append(r.queue, a)
	r.mu.Unlock()
	r.wake()
}

// Spawn starts fn on a new goroutine. A panic inside fn is recovered,
// logged and returned as the task error; deferred cleanup inside fn runs
// before that.
func (r *Runtime) Spawn(ctx context.Context, name string, fn Routine) *Task {
	t := &Task{name: name, done: make(chan struct{})}

	r.mu.Lock()
	r.inflight++
	r.mu.Unlock()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				t.err = fmt.Errorf("%w: %s: %v", ErrRoutinePanicked, name, p)
				r.logger.ErrorContext(ctx, "routine panicked",
					slog.String("routine", name),
					slog.Any("panic", p),
					slog.String("stack", string(debug.Stack())),
				)
			}
			close(t.done)

			r.mu.Lock()
			r.inflight--
			r.mu.Unlock()
			r.wake()
		}()

		t.err = fn(ctx, r.Put)
	}()

	return t
}

// Idle reports whether no routine is running and no action is queued.
func (r *Runtime) Idle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inflight == 0 && len(r.queue) == 0
}

// Settle applies queued actions through dispatch until every routine has
// returned and the queue is empty. Routines spawned by those dispatches are
// waited for too. It must be called on the goroutine that owns the store.
func (r *Runtime) Settle(ctx context.Context, dispatch redux.Dispatch) error {
	return r.loop(ctx, dispatch, true)
}

// Run applies queued actions through dispatch until ctx is done.
func (r *Runtime) Run(ctx context.Context, dispatch redux.Dispatch) error {
	err := r.loop(ctx, dispatch, false)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Runtime) loop(ctx context.Context, dispatch redux.Dispatch, stopWhenIdle bool) error {
	for {
		batch, idle := r.take()
		for _, a := range batch {
			if err := dispatch(a); err != nil {
				return fmt.Errorf("dispatching %s: %w", a.Type(), err)
			}
		}
		if len(batch) > 0 {
			continue
		}
		if idle && stopWhenIdle {
			return nil
		}

		select {
		case <-r.wakeup:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Runtime) take() (batch []redux.Action, idle bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch, r.queue = r.queue, nil
	return batch, r.inflight == 0 && len(batch) == 0
}

func (r *Runtime) wake() {
	select {
	case r.wakeup <- struct{}{}:
	default:
	}
}
