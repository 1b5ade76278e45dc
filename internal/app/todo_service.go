package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoAPI.
var _ ports.TodoAPI = (*TodoService)(nil)

// TodoService implements ports.TodoAPI over the todo repository. Every call
// resolves its token to a user first and only touches that user's todos.
type TodoService struct {
	sessions ports.AuthAPI
	todos    ports.TodoRepository
	logger   *slog.Logger
}

// NewTodoService creates a TodoService. Tokens are resolved through
// sessions.
func NewTodoService(sessions ports.AuthAPI, todos ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		sessions: sessions,
		todos:    todos,
		logger:   logger,
	}
}

// ListTodos returns the session user's todos ordered by ID.
func (s *TodoService) ListTodos(ctx context.Context, token string) ([]todo.Todo, error) {
	u, err := s.sessions.Session(ctx, token)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing todos", slog.Int64("user_id", u.ID))

	list, err := s.todos.List(ctx, u.ID)
	if err != nil {
		s.logFailure(ctx, "ListTodos", u, err)
		return nil, err
	}
	return list, nil
}

// CreateTodo normalizes and validates text, then stores it.
func (s *TodoService) CreateTodo(ctx context.Context, token, text string) (*todo.Todo, error) {
	u, err := s.sessions.Session(ctx, token)
	if err != nil {
		return nil, err
	}

	text = todo.NormalizeText(text)
	if err := todo.ValidateText(text); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating todo", slog.Int64("user_id", u.ID))

	created, err := s.todos.Create(ctx, u.ID, text)
	if err != nil {
		s.logFailure(ctx, "CreateTodo", u, err)
		return nil, err
	}
	return created, nil
}

// UpdateTodo overwrites the text and completion flag of t.ID.
func (s *TodoService) UpdateTodo(ctx context.Context, token string, t todo.Todo) (*todo.Todo, error) {
	u, err := s.sessions.Session(ctx, token)
	if err != nil {
		return nil, err
	}

	t.Text = todo.NormalizeText(t.Text)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating todo",
		slog.Int64("user_id", u.ID),
		slog.Int64("todo_id", t.ID),
	)

	updated, err := s.todos.Update(ctx, u.ID, t)
	if err != nil {
		s.logFailure(ctx, "UpdateTodo", u, err, slog.Int64("todo_id", t.ID))
		return nil, err
	}
	return updated, nil
}

// DeleteTodo removes the todo with the given ID.
func (s *TodoService) DeleteTodo(ctx context.Context, token string, id int64) error {
	u, err := s.sessions.Session(ctx, token)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting todo",
		slog.Int64("user_id", u.ID),
		slog.Int64("todo_id", id),
	)

	if err := s.todos.Delete(ctx, u.ID, id); err != nil {
		s.logFailure(ctx, "DeleteTodo", u, err, slog.Int64("todo_id", id))
		return err
	}
	return nil
}

func (s *TodoService) logFailure(ctx context.Context, operation string, u *user.User, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", operation),
		slog.Int64("user_id", u.ID),
	}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "todo repository call failed", args...)
}
