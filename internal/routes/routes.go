// Package routes is the page route table shared by the HTTP router, the
// SSR pipeline and the renderer.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
)

// View names understood by the renderer.
const (
	ViewSignup   = "signup"
	ViewLogin    = "login"
	ViewProfile  = "profile"
	ViewTodos    = "todos"
	ViewNotFound = "notfound"
)

// Paths of the page routes.
const (
	PathIndex   = "/"
	PathSignup  = "/signup"
	PathLogin   = "/login"
	PathProfile = "/profile"
	PathTodos   = "/todos"
)

// Need is a piece of data a page loads before it renders.
type Need int

const (
	// NeedSession restores the user when the request carries a token.
	NeedSession Need = iota + 1

	// NeedTodos loads the signed-in user's todos.
	NeedTodos
)

// Route describes one page.
type Route struct {
	Name     string
	Pattern  string
	View     string
	TitleKey string
	Needs    []Need

	// RequiresSession sends signed-out visitors to the login page.
	RequiresSession bool
}

// Has reports whether r lists n.
func (r Route) Has(n Need) bool {
	for _, need := range r.Needs {
		if need == n {
			return true
		}
	}
	return false
}

// NotFound is the route rendered for unmatched paths.
var NotFound = Route{
	Name:     "notfound",
	View:     ViewNotFound,
	TitleKey: i18n.KeyNotFoundTitle,
	Needs:    []Need{NeedSession},
}

// Table returns every page route. The index renders the signup view.
func Table() []Route {
	return []Route{
		{Name: "index", Pattern: PathIndex, View: ViewSignup, TitleKey: i18n.KeySignupTitle, Needs: []Need{NeedSession}},
		{Name: "signup", Pattern: PathSignup, View: ViewSignup, TitleKey: i18n.KeySignupTitle, Needs: []Need{NeedSession}},
		{Name: "login", Pattern: PathLogin, View: ViewLogin, TitleKey: i18n.KeyLoginTitle, Needs: []Need{NeedSession}},
		{
			Name: "profile", Pattern: PathProfile, View: ViewProfile, TitleKey: i18n.KeyProfileTitle,
			Needs: []Need{NeedSession}, RequiresSession: true,
		},
		{
			Name: "todos", Pattern: PathTodos, View: ViewTodos, TitleKey: i18n.KeyTodosTitle,
			Needs: []Need{NeedSession, NeedTodos}, RequiresSession: true,
		},
	}
}

// Matcher resolves request paths against the table with chi's route tree.
type Matcher struct {
	mux    *chi.Mux
	routes map[string]Route
}

// NewMatcher builds a Matcher over Table().
func NewMatcher() *Matcher {
	m := &Matcher{mux: chi.NewRouter(), routes: make(map[string]Route)}
	for _, r := range Table() {
		m.routes[r.Pattern] = r
		m.mux.Get(r.Pattern, http.NotFound)
	}
	return m
}

// Match returns the route serving path, or NotFound and false.
func (m *Matcher) Match(path string) (Route, bool) {
	rctx := chi.NewRouteContext()
	if !m.mux.Match(rctx, http.MethodGet, path) {
		return NotFound, false
	}
	r, ok := m.routes[rctx.RoutePattern()]
	if !ok {
		return NotFound, false
	}
	return r, true
}
