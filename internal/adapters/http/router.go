// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-ssr-template/internal/routes"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Todos  *handlers.TodoHandler
	Pages  *handlers.PageHandler
	Health *handlers.HealthHandler

	// Static serves built assets under StaticPath. Both are optional.
	Static     http.Handler
	StaticPath string
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// JSON API consumed by the remote-mode client.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Get("/auth/session", h.Auth.Session)
		r.Post("/auth/logout", h.Auth.Logout)

		r.Get("/todos", h.Todos.ListTodos)
		r.Post("/todos", h.Todos.CreateTodo)
		r.Put("/todos/{id}", h.Todos.UpdateTodo)
		r.Delete("/todos/{id}", h.Todos.DeleteTodo)
	})

	if h.Static != nil && h.StaticPath != "" {
		prefix := strings.TrimSuffix(h.StaticPath, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, h.Static))
	}

	// Rendered pages and their forms.
	for _, route := range routes.Table() {
		r.Get(route.Pattern, h.Pages.Show)
	}
	r.Post(routes.PathSignup, h.Pages.Signup)
	r.Post(routes.PathLogin, h.Pages.Login)
	r.Post("/logout", h.Pages.Logout)
	r.Post(routes.PathTodos, h.Pages.CreateTodo)
	r.Post(routes.PathTodos+"/{id}/toggle", h.Pages.ToggleTodo)
	r.Post(routes.PathTodos+"/{id}/delete", h.Pages.DeleteTodo)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}
		h.Pages.Show(w, req)
	})

	return r
}
