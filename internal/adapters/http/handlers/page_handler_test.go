package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/ssr"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/todos"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// fakePages records requests and answers with a fixed result. Submit runs
// build against tree so tests can inspect the action a form produces.
type fakePages struct {
	tree   *state.Tree
	result *ssr.Result
	err    error

	req    ssr.Request
	action redux.Action
}

func (f *fakePages) Page(_ context.Context, req ssr.Request) (*ssr.Result, error) {
	f.req = req
	return f.result, f.err
}

func (f *fakePages) Submit(_ context.Context, req ssr.Request, build ssr.Build) (*ssr.Result, error) {
	f.req = req
	f.action = build(f.tree)
	return f.result, f.err
}

func signedInTree(list ...todo.Todo) *state.Tree {
	t := state.Initial(nil)
	t = state.Reduce(t, auth.SessionSuccess{User: alice})
	return state.Reduce(t, todos.FetchSuccess{Todos: list})
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: testToken})
	return req
}

func TestShow_WritesPage(t *testing.T) {
	t.Parallel()

	pages := &fakePages{result: &ssr.Result{Status: http.StatusOK, Body: []byte("<html></html>"), Token: testToken}}
	h := handlers.NewPageHandler(pages, false, nil)

	req := httptest.NewRequest(http.MethodGet, "/todos?x=1", nil)
	req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: testToken})
	req = req.WithContext(i18n.WithLocale(req.Context(), "cs"))
	rec := httptest.NewRecorder()
	h.Show(rec, req)

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<html></html>", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies(), "unchanged token is not rewritten")
	assert.Equal(t, ssr.Request{Path: "/todos", URL: "/todos?x=1", Token: testToken, Locale: "cs"}, pages.req)
}

func TestShow_NotFoundStatus(t *testing.T) {
	t.Parallel()

	pages := &fakePages{result: &ssr.Result{Status: http.StatusNotFound, Body: []byte("gone")}}
	h := handlers.NewPageHandler(pages, false, nil)

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestShow_Redirect(t *testing.T) {
	t.Parallel()

	pages := &fakePages{result: &ssr.Result{Status: http.StatusSeeOther, Location: "/login"}}
	h := handlers.NewPageHandler(pages, false, nil)

	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestShow_PipelineErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "render failure", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "timeout", err: context.DeadlineExceeded, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewPageHandler(&fakePages{err: tt.err}, false, nil)
			rec := httptest.NewRecorder()
			h.Show(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			requireStatus(t, rec, tt.want)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	t.Parallel()

	pages := &fakePages{
		tree:   state.Initial(nil),
		result: &ssr.Result{Status: http.StatusSeeOther, Location: "/todos", Token: "tok-new", TokenChanged: true},
	}
	h := handlers.NewPageHandler(pages, true, nil)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{"username": {"alice"}, "password": {"s3cret-pass"}}))

	requireStatus(t, rec, http.StatusSeeOther)
	assert.Equal(t, "/login", pages.req.Path)
	assert.Equal(t, auth.Login{Credentials: user.Credentials{Username: "alice", Password: "s3cret-pass"}}, pages.action)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, handlers.SessionCookie, cookies[0].Name)
	assert.Equal(t, "tok-new", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSignup_BuildsRegister(t *testing.T) {
	t.Parallel()

	pages := &fakePages{tree: state.Initial(nil), result: &ssr.Result{Status: http.StatusUnprocessableEntity, Body: []byte("form")}}
	h := handlers.NewPageHandler(pages, false, nil)

	rec := httptest.NewRecorder()
	h.Signup(rec, postForm("/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"pw"},
	}))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	assert.Equal(t, auth.Register{Credentials: user.Credentials{
		Username: "alice", Email: "alice@example.com", Password: "pw",
	}}, pages.action)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	t.Parallel()

	pages := &fakePages{
		tree:   signedInTree(),
		result: &ssr.Result{Status: http.StatusSeeOther, Location: "/", TokenChanged: true},
	}
	h := handlers.NewPageHandler(pages, false, nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, postForm("/logout", nil))

	assert.Equal(t, auth.Logout{Token: testToken}, pages.action)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogout_SignedOutIsNoop(t *testing.T) {
	t.Parallel()

	pages := &fakePages{tree: state.Initial(nil), result: &ssr.Result{Status: http.StatusSeeOther, Location: "/"}}
	h := handlers.NewPageHandler(pages, false, nil)

	h.Logout(httptest.NewRecorder(), postForm("/logout", nil))
	assert.Nil(t, pages.action)
}

func TestTodoForms(t *testing.T) {
	t.Parallel()

	milk := todo.Todo{ID: 1, Text: "buy milk"}

	tests := []struct {
		name   string
		call   func(h *handlers.PageHandler, w http.ResponseWriter, r *http.Request)
		target string
		id     string
		form   url.Values
		want   redux.Action
	}{
		{
			name:   "create",
			call:   (*handlers.PageHandler).CreateTodo,
			target: "/todos",
			form:   url.Values{"text": {"walk dog"}},
			want:   todos.Create{Token: testToken, Text: "walk dog"},
		},
		{
			name:   "toggle",
			call:   (*handlers.PageHandler).ToggleTodo,
			target: "/todos/1/toggle",
			id:     "1",
			want:   todos.Edit{Token: testToken, OldTodo: milk, NewTodo: milk.Toggled()},
		},
		{
			name:   "delete",
			call:   (*handlers.PageHandler).DeleteTodo,
			target: "/todos/1/delete",
			id:     "1",
			want:   todos.Delete{Token: testToken, Todo: milk},
		},
		{
			name:   "toggle absent todo",
			call:   (*handlers.PageHandler).ToggleTodo,
			target: "/todos/9/toggle",
			id:     "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages := &fakePages{tree: signedInTree(milk), result: &ssr.Result{Status: http.StatusSeeOther, Location: "/todos"}}
			h := handlers.NewPageHandler(pages, false, nil)

			req := postForm(tt.target, tt.form)
			if tt.id != "" {
				req = withChiParams(req, map[string]string{"id": tt.id})
			}
			rec := httptest.NewRecorder()
			tt.call(h, rec, req)

			requireStatus(t, rec, http.StatusSeeOther)
			assert.Equal(t, "/todos", pages.req.Path)
			assert.Equal(t, tt.want, pages.action)
		})
	}
}

func TestToggleTodo_MalformedIDRendersPage(t *testing.T) {
	t.Parallel()

	pages := &fakePages{result: &ssr.Result{Status: http.StatusNotFound, Body: []byte("gone")}}
	h := handlers.NewPageHandler(pages, false, nil)

	req := withChiParams(postForm("/todos/abc/toggle", nil), map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.ToggleTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "/todos/abc/toggle", pages.req.Path)
	assert.Nil(t, pages.action)
}
