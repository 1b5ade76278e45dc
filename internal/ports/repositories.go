package ports

import (
	"context"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
)

// Account is a stored user together with its password hash.
type Account struct {
	User         user.User
	PasswordHash []byte
}

// UserRepository persists accounts and sessions.
type UserRepository interface {
	// CreateAccount stores a new account and returns it with its ID set.
	// Returns domain.ErrConflict when the username or email is taken.
	CreateAccount(ctx context.Context, username, email string, passwordHash []byte) (*Account, error)

	// AccountByUsername returns domain.ErrNotFound for unknown usernames.
	AccountByUsername(ctx context.Context, username string) (*Account, error)

	// CreateSession binds token to the user.
	CreateSession(ctx context.Context, token string, userID int64) error

	// UserBySession returns domain.ErrNotFound for unknown tokens.
	UserBySession(ctx context.Context, token string) (*user.User, error)

	// DeleteSession removes token. Deleting an unknown token is not an error.
	DeleteSession(ctx context.Context, token string) error
}

// TodoRepository persists todos per user.
type TodoRepository interface {
	List(ctx context.Context, userID int64) ([]todo.Todo, error)
	Create(ctx context.Context, userID int64, text string) (*todo.Todo, error)

	// Update returns domain.ErrNotFound when the user has no todo t.ID.
	Update(ctx context.Context, userID int64, t todo.Todo) (*todo.Todo, error)

	// Delete returns domain.ErrNotFound when the user has no such todo.
	Delete(ctx context.Context, userID, id int64) error
}
