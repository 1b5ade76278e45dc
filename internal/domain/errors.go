package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels shared by the store, the API adapter and the HTTP layer. Match
// them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Per-field messages. They are also message catalog keys, so a re-rendered
// form shows them translated.
const (
	MsgRequired = "required"
	MsgTooLong  = "too long"
	MsgInvalid  = "invalid"
	MsgTooShort = "too short"
)

// ValidationError maps field names to one of the Msg constants. It
// matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

// Invalid reports a single offending field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
