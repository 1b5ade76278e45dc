// Package todos is the todo slice of the state tree: its action catalog and
// its reducer.
package todos

import (
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// Action types.
const (
	TypeFetch         = "todo/FETCH"
	TypeFetchSuccess  = "todo/FETCH_SUCCESS"
	TypeFetchError    = "todo/FETCH_ERROR"
	TypeCreate        = "todo/CREATE"
	TypeCreateSuccess = "todo/CREATE_SUCCESS"
	TypeCreateError   = "todo/CREATE_ERROR"
	TypeEdit          = "todo/EDIT"
	TypeEditSuccess   = "todo/EDIT_SUCCESS"
	TypeEditError     = "todo/EDIT_ERROR"
	TypeDelete        = "todo/DELETE"
	TypeDeleteSuccess = "todo/DELETE_SUCCESS"
	TypeDeleteError   = "todo/DELETE_ERROR"
	TypeReset         = "todo/RESET"
)

// Fetch requests the signed-in user's todos.
type Fetch struct {
	Token string `json:"token"`
}

// FetchSuccess replaces the collection.
type FetchSuccess struct {
	Todos []todo.Todo `json:"todos"`
}

// FetchError records a failed fetch.
type FetchError struct {
	Error *domain.Failure `json:"error"`
}

// Create requests a new todo with the given text.
type Create struct {
	Token string `json:"token"`
	Text  string `json:"text"`
}

// CreateSuccess inserts the stored todo.
type CreateSuccess struct {
	Todo todo.Todo `json:"todo"`
}

// CreateError records a failed create.
type CreateError struct {
	Error *domain.Failure `json:"error"`
}

// Edit requests replacing OldTodo with NewTodo.
type Edit struct {
	Token   string    `json:"token"`
	OldTodo todo.Todo `json:"oldTodo"`
	NewTodo todo.Todo `json:"newTodo"`
}

// EditSuccess swaps OldTodo for NewTodo.
type EditSuccess struct {
	OldTodo todo.Todo `json:"oldTodo"`
	NewTodo todo.Todo `json:"newTodo"`
}

// EditError records a failed edit.
type EditError struct {
	Error *domain.Failure `json:"error"`
}

// Delete requests removal of Todo.
type Delete struct {
	Token string    `json:"token"`
	Todo  todo.Todo `json:"todo"`
}

// DeleteSuccess removes Todo.
type DeleteSuccess struct {
	Todo todo.Todo `json:"todo"`
}

// DeleteError records a failed delete.
type DeleteError struct {
	Error *domain.Failure `json:"error"`
}

// Reset returns the slice to its initial state.
type Reset struct{}

func (Fetch) Type() string         { return TypeFetch }
func (FetchSuccess) Type() string  { return TypeFetchSuccess }
func (FetchError) Type() string    { return TypeFetchError }
func (Create) Type() string        { return TypeCreate }
func (CreateSuccess) Type() string { return TypeCreateSuccess }
func (CreateError) Type() string   { return TypeCreateError }
func (Edit) Type() string          { return TypeEdit }
func (EditSuccess) Type() string   { return TypeEditSuccess }
func (EditError) Type() string     { return TypeEditError }
func (Delete) Type() string        { return TypeDelete }
func (DeleteSuccess) Type() string { return TypeDeleteSuccess }
func (DeleteError) Type() string   { return TypeDeleteError }
func (Reset) Type() string         { return TypeReset }

// RegisterActions adds every todo action to r.
func RegisterActions(r *redux.Registry) {
	redux.Register[Fetch](r)
	redux.Register[FetchSuccess](r)
	redux.Register[FetchError](r)
	redux.Register[Create](r)
	redux.Register[CreateSuccess](r)
	redux.Register[CreateError](r)
	redux.Register[Edit](r)
	redux.Register[EditSuccess](r)
	redux.Register[EditError](r)
	redux.Register[Delete](r)
	redux.Register[DeleteSuccess](r)
	redux.Register[DeleteError](r)
	redux.Register[Reset](r)
}
