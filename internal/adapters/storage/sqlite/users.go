package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// Compile-time check that UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository stores accounts and their session tokens.
type UserRepository struct {
	db *sql.DB
}

// CreateAccount inserts a new account.
func (r *UserRepository) CreateAccount(ctx context.Context, username, email string, passwordHash []byte) (*ports.Account, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting user %q: %w", username, translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading user id: %w", err)
	}

	return &ports.Account{
		User:         user.User{ID: id, Username: username, Email: email},
		PasswordHash: passwordHash,
	}, nil
}

// AccountByUsername looks up an account by its exact username.
func (r *UserRepository) AccountByUsername(ctx context.Context, username string) (*ports.Account, error) {
	var acct ports.Account
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash FROM users WHERE username = ?`,
		username,
	).Scan(&acct.User.ID, &acct.User.Username, &acct.User.Email, &acct.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("querying user %q: %w", username, translate(err))
	}
	return &acct, nil
}

// CreateSession binds token to userID.
func (r *UserRepository) CreateSession(ctx context.Context, token string, userID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id) VALUES (?, ?)`,
		token, userID,
	); err != nil {
		return fmt.Errorf("inserting session for user %d: %w", userID, translate(err))
	}
	return nil
}

// UserBySession returns the account behind token without its token field.
func (r *UserRepository) UserBySession(ctx context.Context, token string) (*user.User, error) {
	var u user.User
	err := r.db.QueryRowContext(ctx,
		`SELECT u.id, u.username, u.email
		 FROM sessions s JOIN users u ON u.id = s.user_id
		 WHERE s.token = ?`,
		token,
	).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", translate(err))
	}
	return &u, nil
}

// DeleteSession removes token if present.
func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("deleting session: %w", translate(err))
	}
	return nil
}
