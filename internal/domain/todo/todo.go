// Package todo holds the todo entity and its persistent set.
package todo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
)

// MaxTextLength is the maximum number of runes allowed in a todo's text.
const MaxTextLength = 500

// Todo is an immutable value. Two todos with equal fields are the same
// member of a Set.
type Todo struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NormalizeText trims surrounding whitespace and converts text to NFC so
// visually identical input maps to identical todos.
func NormalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// ValidateText checks the text of a new or edited todo.
func ValidateText(text string) error {
	fields := make(map[string]string)

	switch n := utf8.RuneCountInString(strings.TrimSpace(text)); {
	case !utf8.ValidString(text):
		fields["text"] = domain.MsgInvalid
	case n == 0:
		fields["text"] = domain.MsgRequired
	case n > MaxTextLength:
		fields["text"] = fmt.Sprintf("%s: max %d characters", domain.MsgTooLong, MaxTextLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks business rules for a stored todo.
func (t Todo) Validate() error {
	if err := ValidateText(t.Text); err != nil {
		return err
	}
	if t.ID <= 0 {
		return &domain.ValidationError{Fields: map[string]string{
			"id": fmt.Sprintf("must be positive, got %d", t.ID),
		}}
	}
	return nil
}

// Toggled returns a copy of t with Done flipped.
func (t Todo) Toggled() Todo {
	t.Done = !t.Done
	return t
}
