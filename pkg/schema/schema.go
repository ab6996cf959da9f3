// Package schema declares which single-character flags exist and the
// value type each one expects.
package schema

import (
	"unicode/utf8"

	"github.com/akam1o/args/pkg/errors"
)

// Entry is one declared (name, type-name) pair
type Entry struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// Schema maps flag names to their declared types. It is immutable once built.
type Schema struct {
	types map[string]ArgumentType
	// order keeps first-declaration order for display
	order []string
}

// New builds a Schema from declared entries. A repeated name keeps its last
// declared type.
func New(entries []Entry) (*Schema, error) {
	s := &Schema{
		types: make(map[string]ArgumentType, len(entries)),
		order: make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if !isFlagName(e.Name) {
			return nil, errors.InvalidFlagName(e.Name)
		}
		t, err := ParseArgumentType(e.Type)
		if err != nil {
			return nil, err
		}
		if _, seen := s.types[e.Name]; !seen {
			s.order = append(s.order, e.Name)
		}
		s.types[e.Name] = t
	}

	return s, nil
}

// MustNew is like New but panics if the entries are malformed
func MustNew(entries []Entry) *Schema {
	s, err := New(entries)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the declared type for name. The boolean is false when the
// name is not declared. An empty or multi-character name is a caller error.
func (s *Schema) Lookup(name string) (ArgumentType, bool, error) {
	if !isFlagName(name) {
		return 0, false, errors.InvalidFlagName(name)
	}
	if s == nil {
		return 0, false, nil
	}
	t, ok := s.types[name]
	return t, ok, nil
}

// Clone returns an independent copy of the schema
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := &Schema{
		types: make(map[string]ArgumentType, len(s.types)),
		order: append([]string(nil), s.order...),
	}
	for name, t := range s.types {
		c.types[name] = t
	}
	return c
}

// Entries returns the declarations in first-declaration order
func (s *Schema) Entries() []Entry {
	if s == nil {
		return nil
	}
	entries := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		entries = append(entries, Entry{Name: name, Type: s.types[name].String()})
	}
	return entries
}

// Len returns the number of declared flags
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.types)
}

func isFlagName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) == 1
}
