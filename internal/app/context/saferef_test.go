package appctx_test

import (
	"sync"
	"testing"

	appctx "github.com/jsamuelsen11/go-ssr-template/internal/app/context"
)

func TestSafeRef_GetSet(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef("")

	if got := ref.Get(); got != "" {
		t.Fatalf("Get() = %q, want empty", got)
	}

	ref.Set("/todos")

	if got := ref.Get(); got != "/todos" {
		t.Fatalf("Get() = %q, want %q", got, "/todos")
	}
}

func TestSafeRef_Swap(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef("/signup")

	if prev := ref.Swap("/todos"); prev != "/signup" {
		t.Errorf("Swap() = %q, want %q", prev, "/signup")
	}
	if got := ref.Get(); got != "/todos" {
		t.Errorf("Get() = %q, want %q", got, "/todos")
	}
}

func TestSafeRef_Update(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef([]string{"a"})
	ref.Update(func(v *[]string) { *v = append(*v, "b") })

	if got := ref.Get(); len(got) != 2 || got[1] != "b" {
		t.Errorf("after Update: got %v, want [a b]", got)
	}
}

func TestSafeRef_ConcurrentReadWrite(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(0)

	const writers = 25
	const readers = 25
	var wg sync.WaitGroup

	for range writers {
		wg.Go(func() {
			ref.Update(func(v *int) { *v++ })
		})
	}
	for range readers {
		wg.Go(func() {
			_ = ref.Get()
		})
	}

	wg.Wait()

	if got := ref.Get(); got != writers {
		t.Errorf("final value = %d, want %d", got, writers)
	}
}
