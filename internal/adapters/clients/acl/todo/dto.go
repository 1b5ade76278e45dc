// Package todo implements the Anti-Corruption Layer translators for the
// remote API's todo resources.
package todo

// TodoDTO matches the remote Todo schema.
type TodoDTO struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// CreateTodoRequestDTO matches the remote CreateTodoRequest schema.
type CreateTodoRequestDTO struct {
	Text string `json:"text"`
}

// UpdateTodoRequestDTO matches the remote UpdateTodoRequest schema. Both
// fields are always sent (full replacement semantics).
type UpdateTodoRequestDTO struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// TodoListResponseDTO matches the remote TodoListResponse schema.
type TodoListResponseDTO struct {
	Todos []TodoDTO `json:"todos"`
	Count int64     `json:"count"`
}
