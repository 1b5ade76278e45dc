package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createAlice(t *testing.T, s *Store) int64 {
	t.Helper()

	acct, err := s.Users().CreateAccount(context.Background(), "alice", "alice@example.com", []byte("hash"))
	require.NoError(t, err)
	return acct.User.ID
}

func TestOpen_MigratesOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "twice.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Users().CreateAccount(ctx, "alice", "alice@example.com", []byte("hash"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	var version int
	require.NoError(t, reopened.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)

	acct, err := reopened.Users().AccountByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", acct.User.Email)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	assert.Equal(t, "database", s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	require.NoError(t, s.Close())
	assert.Error(t, s.HealthCheck(context.Background()))
}

func TestUsers_CreateAndLookup(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()

	acct, err := users.CreateAccount(ctx, "alice", "alice@example.com", []byte("hash"))
	require.NoError(t, err)
	assert.NotZero(t, acct.User.ID)

	got, err := users.AccountByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, acct, got)

	_, err = users.AccountByUsername(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsers_CreateAccountConflict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "same username", username: "alice", email: "other@example.com"},
		{name: "same email", username: "alicia", email: "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := openTestStore(t)
			createAlice(t, s)

			_, err := s.Users().CreateAccount(context.Background(), tt.username, tt.email, []byte("hash"))
			assert.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestUsers_Sessions(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	users := s.Users()
	id := createAlice(t, s)

	require.NoError(t, users.CreateSession(ctx, "tok-1", id))

	got, err := users.UserBySession(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, &user.User{ID: id, Username: "alice", Email: "alice@example.com"}, got)

	require.NoError(t, users.DeleteSession(ctx, "tok-1"))
	_, err = users.UserBySession(ctx, "tok-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, users.DeleteSession(ctx, "never-issued"))
}

func TestUsers_SessionForUnknownUser(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	err := s.Users().CreateSession(context.Background(), "tok-1", 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTodos_CRUD(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	todos := s.Todos()
	id := createAlice(t, s)

	empty, err := todos.List(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, empty)

	milk, err := todos.Create(ctx, id, "buy milk")
	require.NoError(t, err)
	dog, err := todos.Create(ctx, id, "walk dog")
	require.NoError(t, err)

	done := todo.Todo{ID: milk.ID, Text: "buy milk", Done: true}
	updated, err := todos.Update(ctx, id, done)
	require.NoError(t, err)
	assert.Equal(t, &done, updated)

	list, err := todos.List(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{done, *dog}, list)

	require.NoError(t, todos.Delete(ctx, id, dog.ID))
	list, err = todos.List(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{done}, list)
}

func TestTodos_ScopedToUser(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	todos := s.Todos()
	alice := createAlice(t, s)

	bob, err := s.Users().CreateAccount(ctx, "bob", "bob@example.com", []byte("hash"))
	require.NoError(t, err)

	milk, err := todos.Create(ctx, alice, "buy milk")
	require.NoError(t, err)

	_, err = todos.Update(ctx, bob.User.ID, todo.Todo{ID: milk.ID, Text: "stolen"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = todos.Delete(ctx, bob.User.ID, milk.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	list, err := todos.List(ctx, bob.User.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
