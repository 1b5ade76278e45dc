package todo

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Set is a persistent set of todos. Every mutation returns a new Set that
// shares structure with the receiver; the receiver is never modified, so a
// Set can be handed to any number of readers without copying.
//
// Members are ordered by ID, then Done, then Text. The zero value is an
// empty set.
type Set struct {
	tree *iradix.Tree[Todo]
}

// NewSet returns a set holding the given todos. Duplicates collapse.
func NewSet(todos ...Todo) Set {
	txn := iradix.New[Todo]().Txn()
	for _, t := range todos {
		txn.Insert(key(t), t)
	}
	return Set{tree: txn.Commit()}
}

// key encodes a todo so byte order matches ID order, with the remaining
// fields appended to make the key structural.
func key(t Todo) []byte {
	buf := make([]byte, 9, 9+len(t.Text))
	binary.BigEndian.PutUint64(buf, uint64(t.ID)^(1<<63))
	if t.Done {
		buf[8] = 1
	}
	return append(buf, t.Text...)
}

func (s Set) root() *iradix.Tree[Todo] {
	if s.tree == nil {
		return iradix.New[Todo]()
	}
	return s.tree
}

// Len returns the number of members.
func (s Set) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Contains reports whether t is a member.
func (s Set) Contains(t Todo) bool {
	if s.tree == nil {
		return false
	}
	_, ok := s.tree.Get(key(t))
	return ok
}

// Add returns a set that also contains t. Adding an existing member returns
// s unchanged.
func (s Set) Add(t Todo) Set {
	if s.Contains(t) {
		return s
	}
	tree, _, _ := s.root().Insert(key(t), t)
	return Set{tree: tree}
}

// Delete returns a set without t. Deleting an absent member returns s
// unchanged.
func (s Set) Delete(t Todo) Set {
	if !s.Contains(t) {
		return s
	}
	tree, _, _ := s.tree.Delete(key(t))
	return Set{tree: tree}
}

// Replace swaps old for replacement. When old is absent the set is returned
// unchanged.
func (s Set) Replace(old, replacement Todo) Set {
	if !s.Contains(old) {
		return s
	}
	return s.Delete(old).Add(replacement)
}

// FindByID returns the first member with the given ID.
func (s Set) FindByID(id int64) (Todo, bool) {
	var (
		found Todo
		ok    bool
	)
	if s.tree == nil {
		return found, false
	}
	prefix := make([]byte, 8)
	binary.BigEndian.PutUint64(prefix, uint64(id)^(1<<63))
	s.tree.Root().WalkPrefix(prefix, func(_ []byte, t Todo) bool {
		found, ok = t, true
		return true
	})
	return found, ok
}

// Slice returns the members in set order. The result is a fresh slice.
func (s Set) Slice() []Todo {
	out := make([]Todo, 0, s.Len())
	if s.tree == nil {
		return out
	}
	s.tree.Root().Walk(func(_ []byte, t Todo) bool {
		out = append(out, t)
		return false
	})
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 || s.tree == other.tree {
		return true
	}
	equal := true
	s.tree.Root().Walk(func(_ []byte, t Todo) bool {
		if !other.Contains(t) {
			equal = false
			return true
		}
		return false
	})
	return equal
}

// MarshalJSON encodes the set as an array in set order.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes an array of todos, rejecting null and unknown
// fields. Members are not checked against the business rules in Validate:
// a set decodes to exactly what was encoded.
func (s *Set) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("todo set: null is not a set")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var todos []Todo
	if err := dec.Decode(&todos); err != nil {
		return fmt.Errorf("todo set: %w", err)
	}
	*s = NewSet(todos...)
	return nil
}
