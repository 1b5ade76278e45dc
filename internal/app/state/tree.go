// Package state assembles the domain slices into the application's state
// tree: the root reducer, the store constructor, the action codec and the
// serialized form embedded in rendered pages.
package state

import (
	"github.com/jsamuelsen11/go-ssr-template/internal/app/navigation"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/settings"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/todos"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/ui"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// Tree is the root of the state. Each field is owned by one domain
// reducer; a Tree is never modified after construction.
type Tree struct {
	Todo   *todos.State    `json:"todo"`
	User   *auth.State     `json:"user"`
	UI     *ui.State       `json:"ui"`
	Config *settings.State `json:"config"`
}

// Store is a store over the application tree.
type Store = redux.Store[*Tree]

// Initial returns a tree with every slice in its initial state and the
// given config slice.
func Initial(config *settings.State) *Tree {
	if config == nil {
		config = settings.Initial()
	}
	return &Tree{
		Todo:   todos.Initial(),
		User:   auth.Initial(),
		UI:     ui.Initial(),
		Config: config,
	}
}

// Reduce is the root reducer. It returns t itself when no slice changed.
func Reduce(t *Tree, a redux.Action) *Tree {
	if t == nil {
		t = &Tree{}
	}

	next := &Tree{
		Todo:   todos.Reduce(t.Todo, a),
		User:   auth.Reduce(t.User, a),
		UI:     ui.Reduce(t.UI, a),
		Config: settings.Reduce(t.Config, a),
	}

	if next.Todo == t.Todo && next.User == t.User && next.UI == t.UI && next.Config == t.Config {
		return t
	}
	return next
}

// NewStore creates a store over initial with the given middleware.
func NewStore(initial *Tree, middlewares ...redux.Middleware) *Store {
	return redux.New(Reduce, initial, middlewares...)
}

// Equal reports structural equality of two trees.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Todo.Equal(other.Todo) &&
		t.User.Equal(other.User) &&
		t.UI.Equal(other.UI) &&
		t.Config.Equal(other.Config)
}

// Actions returns a registry holding every action in the catalog.
func Actions() *redux.Registry {
	r := redux.NewRegistry()
	todos.RegisterActions(r)
	auth.RegisterActions(r)
	ui.RegisterActions(r)
	settings.RegisterActions(r)
	navigation.RegisterActions(r)
	return r
}
