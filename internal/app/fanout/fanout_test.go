package fanout_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/fanout"
)

var pages = []string{"/", "/todos", "/login", "/register", "/todos?filter=done"}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, nil, func(context.Context, string) (int, error) {
		t.Error("fn called for no items")
		return 0, nil
	})
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRun_ResultsFollowInputOrder(t *testing.T) {
	t.Parallel()

	// Later items finish first.
	results := fanout.Run(context.Background(), len(pages), pages, func(_ context.Context, p string) (int, error) {
		time.Sleep(time.Duration(10-len(p)%10) * time.Millisecond)
		return len(p), nil
	})

	require.Len(t, results, len(pages))
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, len(pages[i]), r.Value, pages[i])
	}
}

func TestRun_FailuresStayWithTheirItem(t *testing.T) {
	t.Parallel()

	errGone := errors.New("404 page not found")
	results := fanout.Run(context.Background(), 2, pages, func(_ context.Context, p string) (string, error) {
		if p == "/register" {
			return "", errGone
		}
		return strings.ToUpper(p), nil
	})

	for i, r := range results {
		if pages[i] == "/register" {
			assert.ErrorIs(t, r.Err, errGone)
			assert.Empty(t, r.Value)
			continue
		}
		assert.NoError(t, r.Err)
		assert.Equal(t, strings.ToUpper(pages[i]), r.Value)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 2
	var running, peak atomic.Int32

	fanout.Run(context.Background(), workers, pages, func(context.Context, string) (struct{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		running.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(workers))
	assert.Positive(t, peak.Load())
}

func TestRun_WorkerCounts(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{-1, 0, 1, 100} {
		var calls atomic.Int32
		results := fanout.Run(context.Background(), workers, pages, func(context.Context, string) (bool, error) {
			calls.Add(1)
			return true, nil
		})
		assert.Equal(t, int32(len(pages)), calls.Load(), "workers=%d", workers)
		assert.NoError(t, fanout.Errors(results), "workers=%d", workers)
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, pages, func(context.Context, string) (int, error) {
		calls.Add(1)
		return 0, nil
	})

	// Semaphore.Acquire may still hand out a free slot on a done context,
	// so at most one item runs.
	assert.LessOrEqual(t, calls.Load(), int32(1))
	canceled := 0
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	assert.GreaterOrEqual(t, canceled, len(pages)-1)
}

func TestRun_CancelReachesRunningItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	results := fanout.Run(ctx, len(pages), pages, func(ctx context.Context, _ string) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.DeadlineExceeded)
	}
}

func TestRun_PanicIsolatedToItem(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 2, pages, func(_ context.Context, p string) (int, error) {
		if p == "/login" {
			panic("template not found")
		}
		return 1, nil
	})

	for i, r := range results {
		if pages[i] == "/login" {
			assert.ErrorIs(t, r.Err, fanout.ErrPanicked)
			assert.ErrorContains(t, r.Err, "template not found")
			continue
		}
		assert.NoError(t, r.Err)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	assert.NoError(t, fanout.Errors([]fanout.Result[int]{{Value: 1}, {Value: 2}}))
	assert.NoError(t, fanout.Errors[int](nil))

	a, b := errors.New("fetch /todos"), errors.New("fetch /login")
	err := fanout.Errors([]fanout.Result[int]{{Err: a}, {Value: 3}, {Err: b}})
	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
}
