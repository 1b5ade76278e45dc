package todos

import (
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/redux"
)

// State is the todo slice. Values are never modified after construction.
type State struct {
	Todos todo.Set        `json:"todos"`
	Phase domain.Phase    `json:"phase"`
	Error *domain.Failure `json:"error"`
}

// Initial returns the empty, clean slice.
func Initial() *State {
	return &State{Todos: todo.NewSet(), Phase: domain.PhaseClean}
}

// Equal reports structural equality.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Phase == other.Phase && s.Error.Equal(other.Error) && s.Todos.Equal(other.Todos)
}

func (s *State) with(todos todo.Set, phase domain.Phase, failure *domain.Failure) *State {
	return &State{Todos: todos, Phase: phase, Error: failure}
}

// Reduce applies a to s. A nil s is treated as Initial(). Actions outside
// the todo catalog return s itself.
func Reduce(s *State, a redux.Action) *State {
	if s == nil {
		s = Initial()
	}

	switch a := a.(type) {
	case Fetch, Create, Edit, Delete:
		return s.with(s.Todos, domain.PhaseLoading, nil)

	case FetchSuccess:
		return s.with(todo.NewSet(a.Todos...), domain.PhaseSuccess, nil)
	case CreateSuccess:
		return s.with(s.Todos.Add(a.Todo), domain.PhaseSuccess, nil)
	case EditSuccess:
		return s.with(s.Todos.Replace(a.OldTodo, a.NewTodo), domain.PhaseSuccess, nil)
	case DeleteSuccess:
		return s.with(s.Todos.Delete(a.Todo), domain.PhaseSuccess, nil)

	case FetchError:
		return s.with(s.Todos, domain.PhaseError, a.Error)
	case CreateError:
		return s.with(s.Todos, domain.PhaseError, a.Error)
	case EditError:
		return s.with(s.Todos, domain.PhaseError, a.Error)
	case DeleteError:
		return s.with(s.Todos, domain.PhaseError, a.Error)

	case Reset:
		return Initial()
	}

	return s
}
