package domain

import (
	"encoding/json"
	"fmt"
)

// Phase is the request lifecycle marker kept by each domain sub-state.
type Phase string

const (
	PhaseClean   Phase = "clean"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// IsValid reports whether p is one of the four known phases.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseClean, PhaseLoading, PhaseSuccess, PhaseError:
		return true
	}
	return false
}

func (p Phase) String() string {
	return string(p)
}

// UnmarshalJSON rejects unknown phase names so malformed serialized state
// fails at decode time instead of leaking into reducers.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("phase: %w", err)
	}
	if !Phase(s).IsValid() {
		return fmt.Errorf("phase: unknown value %q", s)
	}
	*p = Phase(s)
	return nil
}
