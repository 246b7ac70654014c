// Package model defines the budget data types shared across bplan.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ListKind selects one of the two expense lists.
type ListKind int

const (
	Fixed ListKind = iota
	Variable
)

// ErrUnknownList is returned by ParseListKind for unrecognized names.
var ErrUnknownList = errors.New("unknown list (want fixed or variable)")

// String returns the lowercase list name used in the serialized form.
func (k ListKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("ListKind(%d)", int(k))
	}
}

// Title returns the display label for the list.
func (k ListKind) Title() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Variable:
		return "Variable"
	default:
		return k.String()
	}
}

// ParseListKind accepts "fixed", "variable" and their short forms.
func ParseListKind(s string) (ListKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "f", "fx":
		return Fixed, nil
	case "variable", "var", "v":
		return Variable, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownList, s)
}

// Entry is a named monetary amount in one of the expense lists.
type Entry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// State is the whole budget: monthly income plus the two ordered expense lists.
type State struct {
	Income   float64 `json:"income"`
	Fixed    []Entry `json:"fixed"`
	Variable []Entry `json:"variable"`
}

// DefaultState returns income 0 and two empty lists.
func DefaultState() State {
	return State{
		Fixed:    []Entry{},
		Variable: []Entry{},
	}
}

// List returns the entries for kind. The slice aliases the state.
func (s State) List(kind ListKind) []Entry {
	if kind == Variable {
		return s.Variable
	}
	return s.Fixed
}

// WithList returns a copy of s whose list for kind is replaced by entries.
func (s State) WithList(kind ListKind, entries []Entry) State {
	next := s.Clone()
	if kind == Variable {
		next.Variable = entries
	} else {
		next.Fixed = entries
	}
	return next
}

// Clone returns a deep copy with non-nil lists.
func (s State) Clone() State {
	c := State{
		Income:   s.Income,
		Fixed:    make([]Entry, len(s.Fixed)),
		Variable: make([]Entry, len(s.Variable)),
	}
	copy(c.Fixed, s.Fixed)
	copy(c.Variable, s.Variable)
	return c
}

// Equal reports field-for-field equality. Nil and empty lists compare equal.
func (s State) Equal(o State) bool {
	if s.Income != o.Income {
		return false
	}
	return entriesEqual(s.Fixed, o.Fixed) && entriesEqual(s.Variable, o.Variable)
}

func entriesEqual(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
