package domain

import (
	"context"
	"errors"
	"maps"
)

// Message ids carried by Failure. The renderer resolves them through the
// message catalog, so they stay stable across locales.
const (
	FailureValidation  = "error.validation"
	FailureCredentials = "user.error.credentials"
	FailureNotFound    = "error.not_found"
	FailureConflict    = "error.conflict"
	FailureUnavailable = "error.unavailable"
	FailureCanceled    = "error.canceled"
)

// Failure is the error payload attached to error actions and stored in a
// domain sub-state while its phase is PhaseError.
type Failure struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Equal reports structural equality.
func (f *Failure) Equal(other *Failure) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Message == other.Message && maps.Equal(f.Fields, other.Fields)
}

// FailureFrom maps an error returned by an external collaborator onto a
// Failure payload. Unknown errors collapse to FailureUnavailable.
func FailureFrom(err error) *Failure {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return &Failure{Message: FailureValidation, Fields: maps.Clone(verr.Fields)}
	case errors.Is(err, ErrValidation):
		return &Failure{Message: FailureValidation}
	case errors.Is(err, ErrForbidden):
		return &Failure{Message: FailureCredentials}
	case errors.Is(err, ErrNotFound):
		return &Failure{Message: FailureNotFound}
	case errors.Is(err, ErrConflict):
		return &Failure{Message: FailureConflict}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Failure{Message: FailureCanceled}
	default:
		return &Failure{Message: FailureUnavailable}
	}
}
