package ports

import (
	"context"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
)

// AuthAPI is the account backend the login and registration routines talk
// to. Implemented in-process by app.AuthService and remotely by the ACL
// client.
type AuthAPI interface {
	// Login exchanges credentials for a user carrying a fresh session token.
	// Returns domain.ErrForbidden for unknown users or wrong passwords.
	Login(ctx context.Context, creds user.Credentials) (*user.User, error)

	// Register creates an account and signs it in.
	// Returns domain.ErrValidation for invalid credentials and
	// domain.ErrConflict when the username or email is taken.
	Register(ctx context.Context, creds user.Credentials) (*user.User, error)

	// Session resolves a token to its user.
	// Returns domain.ErrForbidden when the token is unknown.
	Session(ctx context.Context, token string) (*user.User, error)

	// Logout invalidates a token. Unknown tokens are not an error.
	Logout(ctx context.Context, token string) error
}

// TodoAPI is the todo backend. Every call is scoped to the user behind
// token.
type TodoAPI interface {
	// ListTodos returns all todos of the session user.
	ListTodos(ctx context.Context, token string) ([]todo.Todo, error)

	// CreateTodo stores a new todo with the given text.
	// Returns domain.ErrValidation for blank or oversized text.
	CreateTodo(ctx context.Context, token, text string) (*todo.Todo, error)

	// UpdateTodo overwrites the todo with t.ID.
	// Returns domain.ErrNotFound if the user has no such todo.
	UpdateTodo(ctx context.Context, token string, t todo.Todo) (*todo.Todo, error)

	// DeleteTodo removes the todo with the given ID.
	// Returns domain.ErrNotFound if the user has no such todo.
	DeleteTodo(ctx context.Context, token string, id int64) error
}
