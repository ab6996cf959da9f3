// Package token turns a raw argument vector into a typed token stream.
package token

import (
	"fmt"

	"github.com/akam1o/args/pkg/schema"
)

// Kind represents the kind of a token
type Kind int

const (
	// ProgramName marks the leading program-name argument
	ProgramName Kind = iota
	// Flag is a flag occurrence annotated with its declared type
	Flag
	// StrValue is the value following a string flag
	StrValue
	// IntValue is the value following an int flag
	IntValue
)

// String returns a string representation of the token kind
func (k Kind) String() string {
	switch k {
	case ProgramName:
		return "PROGRAM_NAME"
	case Flag:
		return "FLAG"
	case StrValue:
		return "STR_VALUE"
	case IntValue:
		return "INT_VALUE"
	default:
		return "UNKNOWN"
	}
}

// Token is one unit of the token stream. Only the fields relevant to Kind are set.
type Token struct {
	Kind Kind
	// Type and Name are set for Flag tokens
	Type schema.ArgumentType
	Name string
	// Str is set for StrValue tokens
	Str string
	// Int is set for IntValue tokens
	Int int64
}

// NewProgramName returns the program-name marker
func NewProgramName() Token {
	return Token{Kind: ProgramName}
}

// NewFlag returns a flag token of the given type
func NewFlag(t schema.ArgumentType, name string) Token {
	return Token{Kind: Flag, Type: t, Name: name}
}

// NewStrValue returns a string value token
func NewStrValue(s string) Token {
	return Token{Kind: StrValue, Str: s}
}

// NewIntValue returns an integer value token
func NewIntValue(i int64) Token {
	return Token{Kind: IntValue, Int: i}
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case ProgramName:
		return t.Kind.String()
	case Flag:
		return fmt.Sprintf("%s(%s %s)", t.Kind, t.Type, t.Name)
	case StrValue:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Str)
	case IntValue:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	default:
		return t.Kind.String()
	}
}
