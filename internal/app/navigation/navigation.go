// Package navigation turns navigation actions into a recorded location.
// Page handlers read the location after a request's routines settle and
// answer with a redirect instead of a render.
package navigation

import (
	appctx "github.com/jsamuelsen11/go-ssr-template/internal/app/context"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// TypePush asks the router to move to a new location.
const TypePush = "router/PUSH"

// Push moves to Path.
type Push struct {
	Path string `json:"path"`
}

func (Push) Type() string { return TypePush }

// RegisterActions adds the navigation actions to r.
func RegisterActions(r *redux.Registry) {
	redux.Register[Push](r)
}

// Recorder captures the last pushed location.
type Recorder struct {
	location *appctx.SafeRef[string]
}

// NewRecorder creates a Recorder with no location.
func NewRecorder() *Recorder {
	return &Recorder{location: appctx.NewRef("")}
}

// Middleware swallows Push actions after recording their path; no reducer
// ever sees them.
func (r *Recorder) Middleware() redux.Middleware {
	return func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			if push, ok := a.(Push); ok {
				r.location.Set(push.Path)
				return nil
			}
			return next(a)
		}
	}
}

// Location returns the last pushed path, or "".
func (r *Recorder) Location() string {
	return r.location.Get()
}

// Take returns the last pushed path and clears it.
func (r *Recorder) Take() string {
	return r.location.Swap("")
}
