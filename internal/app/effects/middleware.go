package effects

import (
	"context"

	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// Handler builds the routine that follows an action.
type Handler func(redux.Action) Routine

// Routines maps action types to the routine started for each dispatch.
type Routines map[string]Handler

// On adapts a typed routine constructor to a Handler.
func On[A redux.Action](build func(A) Routine) Handler {
	return func(a redux.Action) Routine {
		return build(a.(A))
	}
}

// Middleware forwards every action first, so the reducer has already
// marked the request as loading, then spawns the routine registered for
// its type. Routines inherit ctx.
func Middleware(ctx context.Context, rt *Runtime, routines Routines) redux.Middleware {
	return func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			if err := next(a); err != nil {
				return err
			}
			if build, ok := routines[a.Type()]; ok {
				rt.Spawn(ctx, a.Type(), build(a))
			}
			return nil
		}
	}
}
