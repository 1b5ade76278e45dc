package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/ssr"
	"github.com/jsamuelsen11/go-ssr-template/internal/app/state"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/todos"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/i18n"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
	"github.com/jsamuelsen11/go-ssr-template/internal/routes"
)

// SessionCookie holds the session token of signed-in visitors.
const SessionCookie = "token"

// maxFormBytes caps form bodies.
const maxFormBytes = 64 << 10

// Pages is the server-side rendering pipeline behind the page handlers.
type Pages interface {
	Page(ctx context.Context, req ssr.Request) (*ssr.Result, error)
	Submit(ctx context.Context, req ssr.Request, build ssr.Build) (*ssr.Result, error)
}

// PageHandler serves rendered pages and the HTML forms posted from them.
type PageHandler struct {
	pages  Pages
	secure bool
	logger *slog.Logger
}

// NewPageHandler creates a PageHandler. secure marks the session cookie
// Secure, for deployments behind TLS.
func NewPageHandler(pages Pages, secure bool, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PageHandler{pages: pages, secure: secure, logger: logger}
}

// Show handles GET for every page path, matched or not.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	res, err := h.pages.Page(r.Context(), h.request(r, r.URL.Path))
	h.write(w, r, res, err)
}

// Signup handles POST /signup.
func (h *PageHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, routes.PathSignup, func(*state.Tree) redux.Action {
		return auth.Register{Credentials: user.Credentials{
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}}
	})
}

// Login handles POST /login.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, routes.PathLogin, func(*state.Tree) redux.Action {
		return auth.Login{Credentials: user.Credentials{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}}
	})
}

// Logout handles POST /logout.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, routes.PathIndex, func(t *state.Tree) redux.Action {
		token := t.User.Token()
		if token == "" {
			return nil
		}
		return auth.Logout{Token: token}
	})
}

// CreateTodo handles POST /todos.
func (h *PageHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, routes.PathTodos, func(t *state.Tree) redux.Action {
		return todos.Create{Token: t.User.Token(), Text: r.PostFormValue("text")}
	})
}

// ToggleTodo handles POST /todos/{id}/toggle.
func (h *PageHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}
	h.submit(w, r, routes.PathTodos, func(t *state.Tree) redux.Action {
		old, found := t.Todo.Todos.FindByID(id)
		if !found {
			return nil
		}
		return todos.Edit{Token: t.User.Token(), OldTodo: old, NewTodo: old.Toggled()}
	})
}

// DeleteTodo handles POST /todos/{id}/delete.
func (h *PageHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}
	h.submit(w, r, routes.PathTodos, func(t *state.Tree) redux.Action {
		old, found := t.Todo.Todos.FindByID(id)
		if !found {
			return nil
		}
		return todos.Delete{Token: t.User.Token(), Todo: old}
	})
}

// todoID parses the {id} parameter. A malformed ID renders the not-found
// page.
func (h *PageHandler) todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := parseID(r, "id")
	if err != nil {
		h.Show(w, r)
		return 0, false
	}
	return id, true
}

func (h *PageHandler) submit(w http.ResponseWriter, r *http.Request, page string, build ssr.Build) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res, err := h.pages.Submit(r.Context(), h.request(r, page), build)
	h.write(w, r, res, err)
}

func (h *PageHandler) request(r *http.Request, path string) ssr.Request {
	req := ssr.Request{
		Path:   path,
		URL:    r.URL.RequestURI(),
		Locale: i18n.LocaleFrom(r.Context()),
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		req.Token = c.Value
	}
	return req
}

func (h *PageHandler) write(w http.ResponseWriter, r *http.Request, res *ssr.Result, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		h.logger.ErrorContext(r.Context(), "page request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if res.TokenChanged {
		http.SetCookie(w, h.sessionCookie(res.Token))
	}

	if res.Redirect() {
		http.Redirect(w, r, res.Location, res.Status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(res.Status)
	if _, err := w.Write(res.Body); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write page", slog.Any("error", err))
	}
}

// sessionCookie sets token, or expires the cookie when token is empty.
func (h *PageHandler) sessionCookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		c.MaxAge = -1
	}
	return c
}
