package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// TodoHandler serves the todo endpoints of the JSON API. Every endpoint
// requires a bearer token.
type TodoHandler struct {
	todos ports.TodoAPI
}

// NewTodoHandler creates a new TodoHandler backed by todos.
func NewTodoHandler(todos ports.TodoAPI) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.todos.ListTodos(r.Context(), token)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(list))
}

// CreateTodo handles POST /api/v1/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.todos.CreateTodo(r.Context(), token, req.Text)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PUT /api/v1/todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.todos.UpdateTodo(r.Context(), token, req.Todo(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(updated))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.todos.DeleteTodo(r.Context(), token, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
