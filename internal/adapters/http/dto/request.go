package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/todo"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain/user"
)

// RegisterRequest represents the JSON body for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" masq:"secret"`
}

// Validate checks that every field is present. Format rules are enforced
// by the auth service.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Credentials converts the request to domain credentials.
func (r *RegisterRequest) Credentials() user.Credentials {
	return user.Credentials{Username: r.Username, Email: r.Email, Password: r.Password}
}

// LoginRequest represents the JSON body for signing in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" masq:"secret"`
}

// Validate checks that both fields are present.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Credentials converts the request to domain credentials.
func (r *LoginRequest) Credentials() user.Credentials {
	return user.Credentials{Username: r.Username, Password: r.Password}
}

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// Validate checks that text is not blank.
func (r *CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &domain.ValidationError{Fields: map[string]string{"text": domain.MsgRequired}}
	}
	return nil
}

// UpdateTodoRequest represents the JSON body for replacing a todo. Both
// fields are required; nil means the client left the field out.
type UpdateTodoRequest struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

// Validate checks that both fields are present and text is not blank.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Text == nil || strings.TrimSpace(*r.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if r.Done == nil {
		fields["done"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Todo converts the request to the domain todo with the given ID.
// Call Validate first.
func (r *UpdateTodoRequest) Todo(id int64) todo.Todo {
	return todo.Todo{ID: id, Text: *r.Text, Done: *r.Done}
}
