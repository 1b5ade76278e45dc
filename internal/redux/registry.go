package redux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownAction is returned by Registry.Decode for unregistered types.
var ErrUnknownAction = errors.New("redux: unknown action type")

// Registry maps action type strings to their Go types so actions recorded
// as JSON can be turned back into values.
type Registry struct {
	decoders map[string]func([]byte) (Action, error)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]func([]byte) (Action, error))}
}

// Register adds action type A under the name returned by its zero value's
// Type method. Registering the same type twice panics.
func Register[A Action](r *Registry) {
	var zero A
	typ := zero.Type()
	if _, dup := r.decoders[typ]; dup {
		panic(fmt.Sprintf("redux: action type %q registered twice", typ))
	}
	r.decoders[typ] = func(payload []byte) (Action, error) {
		var a A
		if len(bytes.TrimSpace(payload)) == 0 {
			return a, nil
		}
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", typ, err)
		}
		return a, nil
	}
}

// Decode builds the action registered under typ from its JSON payload.
// An empty payload yields the zero value.
func (r *Registry) Decode(typ string, payload []byte) (Action, error) {
	decode, ok := r.decoders[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, typ)
	}
	return decode(payload)
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.decoders))
	for typ := range r.decoders {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}
