package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appctx "github.com/jsamuelsen11/go-ssr-template/internal/app/context"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
	"github.com/jsamuelsen11/go-ssr-template/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedToken(token string) AuthOption {
	return WithTokenGenerator(func() string { return token })
}

func aliceAccount(t *testing.T, password string) *ports.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &ports.Account{
		User:         user.User{ID: 7, Username: "alice", Email: "alice@example.com"},
		PasswordHash: hash,
	}
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, discardLogger(), WithBcryptCost(bcrypt.MinCost), fixedToken("tok-1"))
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().
		CreateAccount(mock.Anything, "alice", "alice@example.com", mock.MatchedBy(func(hash []byte) bool {
			return bcrypt.CompareHashAndPassword(hash, []byte("correct horse")) == nil
		})).
		Return(&ports.Account{User: user.User{ID: 7, Username: "alice", Email: "alice@example.com"}}, nil)
	repo.EXPECT().CreateSession(mock.Anything, "tok-1", int64(7)).Return(nil)

	svc := newAuthService(repo)
	got, err := svc.Register(context.Background(), user.Credentials{
		Username: "  alice ",
		Email:    "Alice@Example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, &user.User{ID: 7, Username: "alice", Email: "alice@example.com", Token: "tok-1"}, got)
}

func TestRegister_ValidationSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), user.Credentials{Username: "alice", Email: "nope", Password: "short"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.MsgInvalid, verr.Fields["email"])
	assert.Equal(t, domain.MsgTooShort, verr.Fields["password"])
}

func TestRegister_PasswordTooLongForHash(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	svc := newAuthService(repo)

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.Register(context.Background(), user.Credentials{
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(long),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.MsgTooLong, verr.Fields["password"])
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().CreateAccount(mock.Anything, "alice", "alice@example.com", mock.Anything).
		Return(nil, domain.ErrConflict)

	svc := newAuthService(repo)
	_, err := svc.Register(context.Background(), user.Credentials{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "long enough",
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().AccountByUsername(mock.Anything, "alice").Return(aliceAccount(t, "s3cret-pass"), nil)
	repo.EXPECT().CreateSession(mock.Anything, "tok-1", int64(7)).Return(nil)

	svc := newAuthService(repo)
	got, err := svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, int64(7), got.ID)
}

func TestLogin_Forbidden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		account *ports.Account
		repoErr error
	}{
		{name: "unknown user", repoErr: domain.ErrNotFound},
		{name: "wrong password", account: aliceAccount(t, "s3cret-pass")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockUserRepository(t)
			repo.EXPECT().AccountByUsername(mock.Anything, "alice").Return(tt.account, tt.repoErr)

			svc := newAuthService(repo)
			_, err := svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "guess-again"})

			assert.ErrorIs(t, err, domain.ErrForbidden)
		})
	}
}

func TestLogin_RepositoryFailure(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("disk I/O error")
	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().AccountByUsername(mock.Anything, "alice").Return(nil, dbErr)

	svc := newAuthService(repo)
	_, err := svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "whatever"})

	assert.ErrorIs(t, err, dbErr)
}

// --- Session ---

func TestSession_SetsToken(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().UserBySession(mock.Anything, "tok-9").
		Return(&user.User{ID: 7, Username: "alice"}, nil)

	svc := newAuthService(repo)
	got, err := svc.Session(context.Background(), "tok-9")

	require.NoError(t, err)
	assert.Equal(t, &user.User{ID: 7, Username: "alice", Token: "tok-9"}, got)
}

func TestSession_UnknownAndEmptyTokens(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().UserBySession(mock.Anything, "stale").Return(nil, domain.ErrNotFound)

	svc := newAuthService(repo)

	_, err := svc.Session(context.Background(), "stale")
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Session(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSession_MemoizedPerRequest(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().UserBySession(mock.Anything, "tok-1").
		Return(&user.User{ID: 7, Username: "alice"}, nil).Once()

	svc := newAuthService(repo)
	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))

	first, err := svc.Session(ctx, "tok-1")
	require.NoError(t, err)
	first.Username = "mutated"

	second, err := svc.Session(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", second.Username)
}

func TestSession_MemoizedLookupSeesCallerDeadline(t *testing.T) {
	t.Parallel()

	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().UserBySession(mock.MatchedBy(func(c context.Context) bool {
		_, ok := c.Deadline()
		return ok
	}), "tok-1").Return(&user.User{ID: 7, Username: "alice"}, nil).Once()

	_, err := newAuthService(repo).Session(ctx, "tok-1")
	require.NoError(t, err)
}

// --- Logout ---

func TestLogout_ForgetsMemoizedSession(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().UserBySession(mock.Anything, "tok-1").
		Return(&user.User{ID: 7}, nil).Once()
	repo.EXPECT().DeleteSession(mock.Anything, "tok-1").Return(nil)
	repo.EXPECT().UserBySession(mock.Anything, "tok-1").
		Return(nil, domain.ErrNotFound).Once()

	svc := newAuthService(repo)
	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))

	_, err := svc.Session(ctx, "tok-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "tok-1"))

	_, err = svc.Session(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogout_WithoutRequestContext(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().DeleteSession(mock.Anything, "tok-1").Return(errors.New("locked"))

	svc := newAuthService(repo)
	assert.EqualError(t, svc.Logout(context.Background(), "tok-1"), "locked")
}

func TestNewAuthService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(mocks.NewMockUserRepository(t), nil)
	if svc.logger == nil {
		t.Fatal("NewAuthService(nil logger) should create a no-op logger, got nil")
	}
	if svc.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", svc.cost, bcrypt.DefaultCost)
	}
}
