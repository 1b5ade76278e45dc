package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	acltodo "github.com/jsamuelsen11/go-ssr-template/internal/adapters/clients/acl/todo"
	acluser "github.com/jsamuelsen11/go-ssr-template/internal/adapters/clients/acl/user"
	appctx "github.com/jsamuelsen11/go-ssr-template/internal/app/context"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AuthAPI = (*APIClient)(nil)
	_ ports.TodoAPI = (*APIClient)(nil)
)

// API paths.
const (
	pathRegister = "/api/v1/auth/register"
	pathLogin    = "/api/v1/auth/login"
	pathSession  = "/api/v1/auth/session"
	pathLogout   = "/api/v1/auth/logout"
	pathTodos    = "/api/v1/todos"
)

// APIClient is the outbound adapter for a remote instance of the todo API.
// It implements [ports.AuthAPI] and [ports.TodoAPI] so routines and pages
// run unchanged whether the backend is in-process or remote.
//
// Wire representations are translated by the [acltodo] and [acluser]
// sub-packages; HTTP errors are mapped to domain errors by
// [TranslateHTTPError]. The underlying [httpclient.Client] provides circuit
// breaking, retry, rate limiting, and tracing for every call.
type APIClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewAPIClient creates an APIClient that sends requests through client.
// The client's BaseURL should point at the API root.
func NewAPIClient(client *httpclient.Client, logger *slog.Logger) *APIClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &APIClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Auth operations ---

// Register sends POST /api/v1/auth/register.
func (c *APIClient) Register(ctx context.Context, creds user.Credentials) (*user.User, error) {
	var dto acluser.UserDTO
	if err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       pathRegister,
		WantStatus: http.StatusCreated,
		Body:       acluser.ToCredentialsRequest(creds),
		Out:        &dto,
	}); err != nil {
		return nil, err
	}
	return acluser.ToDomainUser(&dto, ""), nil
}

// Login sends POST /api/v1/auth/login. The remote API answers 403 for bad
// credentials, which maps to [domain.ErrForbidden].
func (c *APIClient) Login(ctx context.Context, creds user.Credentials) (*user.User, error) {
	var dto acluser.UserDTO
	if err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       pathLogin,
		WantStatus: http.StatusOK,
		Body:       acluser.ToCredentialsRequest(user.Credentials{Username: creds.Username, Password: creds.Password}),
		Out:        &dto,
	}); err != nil {
		return nil, err
	}
	return acluser.ToDomainUser(&dto, ""), nil
}

// Session sends GET /api/v1/auth/session with token as bearer credential.
// Lookups are memoized per request like the in-process service.
func (c *APIClient) Session(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, domain.ErrForbidden
	}

	fetch := func(ctx context.Context) (*user.User, error) {
		var dto acluser.UserDTO
		if err := c.req.Do(ctx, Call{
			Method:     http.MethodGet,
			Path:       pathSession,
			Token:      token,
			WantStatus: http.StatusOK,
			Out:        &dto,
		}); err != nil {
			return nil, err
		}
		return acluser.ToDomainUser(&dto, token), nil
	}

	u, err := appctx.GetOrFetch(ctx, appctx.FromContext(ctx), "session:"+token, fetch)
	if err != nil {
		return nil, err
	}

	out := *u
	return &out, nil
}

// Logout sends POST /api/v1/auth/logout. A token the remote side no longer
// knows is treated as already signed out.
func (c *APIClient) Logout(ctx context.Context, token string) error {
	appctx.FromContext(ctx).Forget("session:" + token)

	err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       pathLogout,
		Token:      token,
		WantStatus: http.StatusNoContent,
	})
	if errors.Is(err, domain.ErrForbidden) {
		return nil
	}
	return err
}

// --- Todo operations ---

// ListTodos fetches GET /api/v1/todos.
func (c *APIClient) ListTodos(ctx context.Context, token string) ([]todo.Todo, error) {
	var dto acltodo.TodoListResponseDTO
	if err := c.req.Do(ctx, Call{
		Method:     http.MethodGet,
		Path:       pathTodos,
		Token:      token,
		WantStatus: http.StatusOK,
		Out:        &dto,
	}); err != nil {
		return nil, err
	}
	return acltodo.ToDomainTodoList(dto), nil
}

// CreateTodo sends POST /api/v1/todos and returns the stored todo.
// Returns [domain.ErrValidation] if the remote side rejects the text.
func (c *APIClient) CreateTodo(ctx context.Context, token, text string) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	if err := c.req.Do(ctx, Call{
		Method:     http.MethodPost,
		Path:       pathTodos,
		Token:      token,
		WantStatus: http.StatusCreated,
		Body:       acltodo.ToCreateTodoRequest(text),
		Out:        &dto,
	}); err != nil {
		return nil, err
	}
	result := acltodo.ToDomainTodo(&dto)
	return &result, nil
}

// UpdateTodo sends PUT /api/v1/todos/{id}. Returns [domain.ErrNotFound] if
// the todo does not exist.
func (c *APIClient) UpdateTodo(ctx context.Context, token string, t todo.Todo) (*todo.Todo, error) {
	var dto acltodo.TodoDTO
	if err := c.req.Do(ctx, Call{
		Method:     http.MethodPut,
		Path:       todoPath(t.ID),
		Token:      token,
		WantStatus: http.StatusOK,
		Body:       acltodo.ToUpdateTodoRequest(t),
		Out:        &dto,
	}); err != nil {
		return nil, err
	}
	result := acltodo.ToDomainTodo(&dto)
	return &result, nil
}

// DeleteTodo sends DELETE /api/v1/todos/{id}. Returns [domain.ErrNotFound]
// if the todo does not exist.
func (c *APIClient) DeleteTodo(ctx context.Context, token string, id int64) error {
	return c.req.Do(ctx, Call{
		Method:     http.MethodDelete,
		Path:       todoPath(id),
		Token:      token,
		WantStatus: http.StatusNoContent,
	})
}

func todoPath(id int64) string {
	return fmt.Sprintf("%s/%d", pathTodos, id)
}
