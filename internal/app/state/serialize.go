package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
)

// ErrMalformedState is returned by Hydrate for any blob that does not
// describe a complete, valid tree.
var ErrMalformedState = errors.New("malformed serialized state")

// ErrUnserializable is returned by Serialize for a tree whose encoding would
// not hydrate back to an equal tree, such as one holding invalid UTF-8.
var ErrUnserializable = errors.New("state does not survive serialization")

// Serialize encodes t as JSON. The output escapes <, > and & so it can be
// embedded in an HTML script element verbatim. Every blob it returns
// hydrates to a tree equal to t.
func Serialize(t *Tree) ([]byte, error) {
	if t == nil {
		return nil, errors.New("serialize: nil tree")
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	back, err := Hydrate(data)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w: %w", ErrUnserializable, err)
	}
	if !back.Equal(t) {
		return nil, fmt.Errorf("serialize: %w: encoding is lossy", ErrUnserializable)
	}
	return data, nil
}

// Hydrate decodes a blob produced by Serialize. Unknown fields, missing
// slices, unknown phases and trailing data are rejected; there is no
// partial recovery.
func Hydrate(data []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var t Tree
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after tree", ErrMalformedState)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	return &t, nil
}

func (t *Tree) validate() error {
	switch {
	case t.Todo == nil:
		return errors.New("missing todo slice")
	case t.User == nil:
		return errors.New("missing user slice")
	case t.UI == nil:
		return errors.New("missing ui slice")
	case t.Config == nil:
		return errors.New("missing config slice")
	}

	var errs []error
	errs = append(errs,
		validatePhase("todo", t.Todo.Phase, t.Todo.Error),
		validatePhase("user", t.User.Phase, t.User.Error),
	)
	if !slices.IsSorted(t.UI.Submitting) || len(slices.Compact(slices.Clone(t.UI.Submitting))) != len(t.UI.Submitting) {
		errs = append(errs, errors.New("ui.submitting must be sorted and unique"))
	}
	if !t.Config.Supports(t.Config.Locale) {
		errs = append(errs, fmt.Errorf("config.locale %q is not in config.locales", t.Config.Locale))
	}
	return errors.Join(errs...)
}

func validatePhase(slice string, p domain.Phase, failure *domain.Failure) error {
	if !p.IsValid() {
		return fmt.Errorf("%s.phase: unknown value %q", slice, p)
	}
	if failure != nil && p != domain.PhaseError {
		return fmt.Errorf("%s.error set while phase is %q", slice, p)
	}
	return nil
}
