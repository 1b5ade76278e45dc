package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// Compile-time check that TodoRepository implements ports.TodoRepository.
var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository stores todos per user. Every statement is filtered by
// user_id, so one user can never see or touch another's todos.
type TodoRepository struct {
	db *sql.DB
}

// List returns the user's todos ordered by ID.
func (r *TodoRepository) List(ctx context.Context, userID int64) ([]todo.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, done FROM todos WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Done); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

// Create inserts a new, not yet done todo.
func (r *TodoRepository) Create(ctx context.Context, userID int64, text string) (*todo.Todo, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (user_id, text, done) VALUES (?, ?, 0)`,
		userID, text,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading todo id: %w", err)
	}
	return &todo.Todo{ID: id, Text: text}, nil
}

// Update overwrites text and done of t.ID.
func (r *TodoRepository) Update(ctx context.Context, userID int64, t todo.Todo) (*todo.Todo, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET text = ?, done = ? WHERE id = ? AND user_id = ?`,
		t.Text, t.Done, t.ID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", t.ID, translate(err))
	}
	if err := expectOneRow(res, t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the todo with id.
func (r *TodoRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, translate(err))
	}
	return expectOneRow(res, id)
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
