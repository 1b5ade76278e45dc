package effects

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-ssr-template/internal/app/navigation"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/auth"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/todos"
	"github.com/jsamuelsen11/go-ssr-template/internal/ducks/ui"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// Locations the routines navigate to.
const (
	HomePath      = "/"
	AfterAuthPath = "/todos"
)

// Processes holds the routines of the application and the APIs they call.
type Processes struct {
	auth   ports.AuthAPI
	todos  ports.TodoAPI
	logger *slog.Logger
}

// NewProcesses creates the routine set over the given APIs.
func NewProcesses(authAPI ports.AuthAPI, todoAPI ports.TodoAPI, logger *slog.Logger) *Processes {
	return &Processes{auth: authAPI, todos: todoAPI, logger: logger}
}

// Routines returns the action-to-routine table for Middleware.
func (p *Processes) Routines() Routines {
	return Routines{
		auth.TypeLogin:    On(p.LoginUser),
		auth.TypeRegister: On(p.RegisterUser),
		auth.TypeSession:  On(p.FetchSession),
		auth.TypeLogout:   On(p.LogoutUser),
		todos.TypeFetch:   On(p.FetchTodos),
		todos.TypeCreate:  On(p.CreateTodo),
		todos.TypeEdit:    On(p.EditTodo),
		todos.TypeDelete:  On(p.DeleteTodo),
	}
}

// LoginUser signs in: submission marker, API call, then the user and a
// move to the todo list, or the failure. The submission marker is always
// cleared.
func (p *Processes) LoginUser(a auth.Login) Routine {
	return func(ctx context.Context, put Put) error {
		put(ui.StartSubmit{Form: ui.FormLogin})
		defer put(ui.StopSubmit{Form: ui.FormLogin})

		u, err := p.auth.Login(ctx, a.Credentials)
		if err != nil {
			p.fail(ctx, "LoginUser", err)
			put(auth.LoginError{Error: domain.FailureFrom(err)})
			return nil
		}

		put(auth.LoginSuccess{User: *u})
		put(navigation.Push{Path: AfterAuthPath})
		return nil
	}
}

// RegisterUser mirrors LoginUser for account creation.
func (p *Processes) RegisterUser(a auth.Register) Routine {
	return func(ctx context.Context, put Put) error {
		put(ui.StartSubmit{Form: ui.FormRegister})
		defer put(ui.StopSubmit{Form: ui.FormRegister})

		u, err := p.auth.Register(ctx, a.Credentials)
		if err != nil {
			p.fail(ctx, "RegisterUser", err)
			put(auth.RegisterError{Error: domain.FailureFrom(err)})
			return nil
		}

		put(auth.RegisterSuccess{User: *u})
		put(navigation.Push{Path: AfterAuthPath})
		return nil
	}
}

// FetchSession restores the user behind a token. A token the API no longer
// knows signs the user out before the error is recorded; any other failure
// leaves the current user in place.
func (p *Processes) FetchSession(a auth.Session) Routine {
	return func(ctx context.Context, put Put) error {
		u, err := p.auth.Session(ctx, a.Token)
		if err != nil {
			p.fail(ctx, "FetchSession", err)
			if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
				put(auth.Reset{})
			}
			put(auth.SessionError{Error: domain.FailureFrom(err)})
			return nil
		}
		put(auth.SessionSuccess{User: *u})
		return nil
	}
}

// LogoutUser invalidates the token server-side and returns home. The user
// slice is already cleared by the reducer, so a failed call is only logged.
func (p *Processes) LogoutUser(a auth.Logout) Routine {
	return func(ctx context.Context, put Put) error {
		if err := p.auth.Logout(ctx, a.Token); err != nil {
			p.fail(ctx, "LogoutUser", err)
		}
		put(navigation.Push{Path: HomePath})
		return nil
	}
}

// FetchTodos loads the signed-in user's todos.
func (p *Processes) FetchTodos(a todos.Fetch) Routine {
	return func(ctx context.Context, put Put) error {
		list, err := p.todos.ListTodos(ctx, a.Token)
		if err != nil {
			p.fail(ctx, "FetchTodos", err)
			put(todos.FetchError{Error: domain.FailureFrom(err)})
			return nil
		}
		put(todos.FetchSuccess{Todos: list})
		return nil
	}
}

// CreateTodo stores a new todo.
func (p *Processes) CreateTodo(a todos.Create) Routine {
	return func(ctx context.Context, put Put) error {
		put(ui.StartSubmit{Form: ui.FormTodo})
		defer put(ui.StopSubmit{Form: ui.FormTodo})

		created, err := p.todos.CreateTodo(ctx, a.Token, a.Text)
		if err != nil {
			p.fail(ctx, "CreateTodo", err)
			put(todos.CreateError{Error: domain.FailureFrom(err)})
			return nil
		}
		put(todos.CreateSuccess{Todo: *created})
		return nil
	}
}

// EditTodo replaces OldTodo with the stored version of NewTodo.
func (p *Processes) EditTodo(a todos.Edit) Routine {
	return func(ctx context.Context, put Put) error {
		updated, err := p.todos.UpdateTodo(ctx, a.Token, a.NewTodo)
		if err != nil {
			p.fail(ctx, "EditTodo", err)
			put(todos.EditError{Error: domain.FailureFrom(err)})
			return nil
		}
		put(todos.EditSuccess{OldTodo: a.OldTodo, NewTodo: *updated})
		return nil
	}
}

// DeleteTodo removes a todo.
func (p *Processes) DeleteTodo(a todos.Delete) Routine {
	return func(ctx context.Context, put Put) error {
		if err := p.todos.DeleteTodo(ctx, a.Token, a.Todo.ID); err != nil {
			p.fail(ctx, "DeleteTodo", err)
			put(todos.DeleteError{Error: domain.FailureFrom(err)})
			return nil
		}
		put(todos.DeleteSuccess{Todo: a.Todo})
		return nil
	}
}

func (p *Processes) fail(ctx context.Context, operation string, err error) {
	p.logger.WarnContext(ctx, "routine failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
}
