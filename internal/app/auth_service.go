// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appctx "github.com/jsamuelsen11/go-ssr-template/internal/app/context"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthAPI.
var _ ports.AuthAPI = (*AuthService)(nil)

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithBcryptCost overrides the password hashing cost. Tests use
// bcrypt.MinCost.
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) { s.cost = cost }
}

// WithTokenGenerator overrides how session tokens are minted.
func WithTokenGenerator(gen func() string) AuthOption {
	return func(s *AuthService) { s.newToken = gen }
}

// AuthService implements ports.AuthAPI over the user repository. Passwords
// are stored as bcrypt hashes; sessions are opaque UUID tokens.
type AuthService struct {
	users    ports.UserRepository
	logger   *slog.Logger
	cost     int
	newToken func() string
}

// NewAuthService creates an AuthService.
func NewAuthService(users ports.UserRepository, logger *slog.Logger, opts ...AuthOption) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &AuthService{
		users:    users,
		logger:   logger,
		cost:     bcrypt.DefaultCost,
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates creds, stores a new account and signs it in.
func (s *AuthService) Register(ctx context.Context, creds user.Credentials) (*user.User, error) {
	creds = creds.Normalized()
	s.logger.InfoContext(ctx, "registering user", slog.String("username", creds.Username))

	if err := creds.ValidateRegister(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &domain.ValidationError{Fields: map[string]string{"password": domain.MsgTooLong}}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	acct, err := s.users.CreateAccount(ctx, creds.Username, creds.Email, hash)
	if err != nil {
		s.logFailure(ctx, "Register", err)
		return nil, err
	}

	return s.startSession(ctx, "Register", acct.User)
}

// Login checks creds against the stored hash. Unknown usernames and wrong
// passwords both return domain.ErrForbidden.
func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (*user.User, error) {
	creds = creds.Normalized()
	s.logger.InfoContext(ctx, "signing in user", slog.String("username", creds.Username))

	if err := creds.ValidateLogin(); err != nil {
		return nil, err
	}

	acct, err := s.users.AccountByUsername(ctx, creds.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrForbidden
	}
	if err != nil {
		s.logFailure(ctx, "Login", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(creds.Password)); err != nil {
		s.logger.WarnContext(ctx, "password mismatch",
			slog.String("operation", "Login"),
			slog.Int64("user_id", acct.User.ID),
		)
		return nil, domain.ErrForbidden
	}

	return s.startSession(ctx, "Login", acct.User)
}

// Session resolves token to its user. The lookup is memoized per request,
// since a page render and its routines may each ask.
func (s *AuthService) Session(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, domain.ErrForbidden
	}

	fetch := func(ctx context.Context) (*user.User, error) {
		u, err := s.users.UserBySession(ctx, token)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		if err != nil {
			s.logFailure(ctx, "Session", err)
			return nil, err
		}
		signedIn := *u
		signedIn.Token = token
		return &signedIn, nil
	}

	u, err := appctx.GetOrFetch(ctx, appctx.FromContext(ctx), sessionKey(token), fetch)
	if err != nil {
		return nil, err
	}

	out := *u
	return &out, nil
}

// Logout deletes the session behind token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	s.logger.InfoContext(ctx, "signing out user")

	appctx.FromContext(ctx).Forget(sessionKey(token))

	if err := s.users.DeleteSession(ctx, token); err != nil {
		s.logFailure(ctx, "Logout", err)
		return err
	}
	return nil
}

func (s *AuthService) startSession(ctx context.Context, operation string, u user.User) (*user.User, error) {
	token := s.newToken()
	if err := s.users.CreateSession(ctx, token, u.ID); err != nil {
		s.logFailure(ctx, operation, err)
		return nil, err
	}

	u.Token = token
	return &u, nil
}

func (s *AuthService) logFailure(ctx context.Context, operation string, err error) {
	s.logger.ErrorContext(ctx, "user repository call failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
}

func sessionKey(token string) string {
	return "session:" + token
}
