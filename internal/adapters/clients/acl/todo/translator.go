package todo

import (
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
)

// ToDomainTodo converts a remote TodoDTO to a domain Todo.
func ToDomainTodo(dto *TodoDTO) todo.Todo {
	return todo.Todo{
		ID:   dto.ID,
		Text: dto.Text,
		Done: dto.Done,
	}
}

// ToDomainTodoList converts a remote TodoListResponseDTO to a slice of
// domain todos. A missing list yields an empty, non-nil slice.
func ToDomainTodoList(dto TodoListResponseDTO) []todo.Todo {
	todos := make([]todo.Todo, len(dto.Todos))
	for i := range dto.Todos {
		todos[i] = ToDomainTodo(&dto.Todos[i])
	}
	return todos
}

// ToCreateTodoRequest builds the body for creating a todo.
func ToCreateTodoRequest(text string) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{Text: text}
}

// ToUpdateTodoRequest converts a domain Todo to a remote
// UpdateTodoRequestDTO. The ID travels in the URL path.
func ToUpdateTodoRequest(t todo.Todo) UpdateTodoRequestDTO {
	return UpdateTodoRequestDTO{
		Text: t.Text,
		Done: t.Done,
	}
}
