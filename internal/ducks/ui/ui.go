// Package ui is the presentation slice of the state tree: the sidebar and
// the per-form submission markers.
package ui

import (
	"slices"

	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// Action types.
const (
	TypeToggleSidebar = "ui/TOGGLE_SIDEBAR"
	TypeStartSubmit   = "ui/START_SUBMIT"
	TypeStopSubmit    = "ui/STOP_SUBMIT"
	TypeReset         = "ui/RESET"
)

// Form names used with the submission markers.
const (
	FormLogin    = "login"
	FormRegister = "register"
	FormTodo     = "todo"
)

// ToggleSidebar opens a closed sidebar and closes an open one.
type ToggleSidebar struct{}

// StartSubmit marks Form as having a submission in flight.
type StartSubmit struct {
	Form string `json:"form"`
}

// StopSubmit clears the in-flight marker of Form.
type StopSubmit struct {
	Form string `json:"form"`
}

// Reset returns the slice to its initial state.
type Reset struct{}

func (ToggleSidebar) Type() string { return TypeToggleSidebar }
func (StartSubmit) Type() string   { return TypeStartSubmit }
func (StopSubmit) Type() string    { return TypeStopSubmit }
func (Reset) Type() string         { return TypeReset }

// RegisterActions adds every ui action to r.
func RegisterActions(r *redux.Registry) {
	redux.Register[ToggleSidebar](r)
	redux.Register[StartSubmit](r)
	redux.Register[StopSubmit](r)
	redux.Register[Reset](r)
}

// State is the ui slice. Submitting is sorted and never modified in place.
type State struct {
	SidebarOpen bool     `json:"sidebarOpen"`
	Submitting  []string `json:"submitting"`
}

// Initial returns a closed sidebar with no form submitting.
func Initial() *State {
	return &State{Submitting: []string{}}
}

// IsSubmitting reports whether form has an outstanding submission.
func (s *State) IsSubmitting(form string) bool {
	_, found := slices.BinarySearch(s.Submitting, form)
	return found
}

// Equal reports structural equality.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.SidebarOpen == other.SidebarOpen && slices.Equal(s.Submitting, other.Submitting)
}

// Reduce applies a to s. A nil s is treated as Initial().
func Reduce(s *State, a redux.Action) *State {
	if s == nil {
		s = Initial()
	}

	switch a := a.(type) {
	case ToggleSidebar:
		return &State{SidebarOpen: !s.SidebarOpen, Submitting: s.Submitting}

	case StartSubmit:
		i, found := slices.BinarySearch(s.Submitting, a.Form)
		if found {
			return s
		}
		return &State{SidebarOpen: s.SidebarOpen, Submitting: slices.Insert(slices.Clone(s.Submitting), i, a.Form)}

	case StopSubmit:
		i, found := slices.BinarySearch(s.Submitting, a.Form)
		if !found {
			return s
		}
		return &State{SidebarOpen: s.SidebarOpen, Submitting: slices.Delete(slices.Clone(s.Submitting), i, i+1)}

	case Reset:
		return Initial()
	}

	return s
}
