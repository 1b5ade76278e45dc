package bootstrap_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/client/bootstrap"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/settings"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/todos"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
	"github.com/jsamuelsen11/go-ssr-template/internal/render"
	"github.com/jsamuelsen11/go-ssr-template/internal/routes"
)

func renderedPage(t *testing.T, tree *state.Tree) []byte {
	t.Helper()

	bundle, err := i18n.New([]string{"en", "cs", "de"}, "en")
	require.NoError(t, err)
	r, err := render.New(render.Options{Production: true, Bundle: bundle, Assets: render.DevAssets("/static")})
	require.NoError(t, err)

	route, ok := routes.NewMatcher().Match(routes.PathTodos)
	require.True(t, ok)

	out, err := r.Render(context.Background(), render.Page{State: tree, Route: route, URL: routes.PathTodos})
	require.NoError(t, err)
	return out
}

func serverTree() *state.Tree {
	tree := state.Initial(settings.New("Reactizer", "cs", []string{"en", "cs", "de"}, ""))
	tree = state.Reduce(tree, auth.SessionSuccess{User: user.User{ID: 7, Username: "alice", Email: "alice@example.com", Token: "tok-1"}})
	return state.Reduce(tree, todos.FetchSuccess{Todos: []todo.Todo{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: "</script><script>alert(1)</script>", Done: true},
	}})
}

func TestBootstrap_RoundTripsRenderedState(t *testing.T) {
	t.Parallel()

	tree := serverTree()
	store, err := bootstrap.Bootstrap(bytes.NewReader(renderedPage(t, tree)))
	require.NoError(t, err)

	assert.True(t, tree.Equal(store.GetState()), "hydrated tree differs from the rendered one")
}

func TestBootstrap_StoreKeepsWorking(t *testing.T) {
	t.Parallel()

	var seen []string
	logTypes := func(next redux.Dispatch) redux.Dispatch {
		return func(a redux.Action) error {
			seen = append(seen, a.Type())
			return next(a)
		}
	}

	store, err := bootstrap.Bootstrap(bytes.NewReader(renderedPage(t, serverTree())), logTypes)
	require.NoError(t, err)

	require.NoError(t, store.Dispatch(todos.EditSuccess{
		OldTodo: todo.Todo{ID: 1, Text: "buy milk"},
		NewTodo: todo.Todo{ID: 1, Text: "buy milk", Done: true},
	}))

	got, ok := store.GetState().Todo.Todos.FindByID(1)
	require.True(t, ok)
	assert.True(t, got.Done)
	assert.Equal(t, []string{todos.EditSuccess{}.Type()}, seen)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr error
	}{
		{
			name: "state script",
			doc:  `<html><body><script id="app-state" type="application/json">{"a":1}</script></body></html>`,
			want: `{"a":1}`,
		},
		{
			name: "ignores other scripts",
			doc:  `<script>var x = 1;</script><script id="app-state" type="application/json"> {} </script>`,
			want: `{}`,
		},
		{
			name:    "missing",
			doc:     `<html><body><p>hello</p></body></html>`,
			wantErr: bootstrap.ErrNoState,
		},
		{
			name:    "empty",
			doc:     `<script id="app-state" type="application/json"></script>`,
			wantErr: state.ErrMalformedState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bootstrap.Extract(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestBootstrap_MalformedStateFailsBoot(t *testing.T) {
	t.Parallel()

	docs := []string{
		`<script id="app-state" type="application/json">{"todo":</script>`,
		`<script id="app-state" type="application/json">{"todo":{},"user":{}}</script>`,
		`<script id="app-state" type="application/json">[]</script>`,
	}

	for _, doc := range docs {
		store, err := bootstrap.Bootstrap(strings.NewReader(doc))
		require.ErrorIs(t, err, state.ErrMalformedState, doc)
		assert.Nil(t, store)
	}
}

func TestBootstrap_NoState(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.Bootstrap(strings.NewReader("<html></html>"))
	assert.ErrorIs(t, err, bootstrap.ErrNoState)
}
