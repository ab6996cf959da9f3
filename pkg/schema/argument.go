package schema

import "github.com/akam1o/args/pkg/errors"

// ArgumentType is the value type a flag expects
type ArgumentType int

const (
	// Bool is a presence flag that takes no value
	Bool ArgumentType = iota
	// Str takes the following argument verbatim
	Str
	// Int takes the following argument as a signed decimal integer
	Int
)

// String returns the type name as written in schema declarations
func (t ArgumentType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Str:
		return "string"
	case Int:
		return "int"
	default:
		return "unknown"
	}
}

// ParseArgumentType converts a declared type name into an ArgumentType
func ParseArgumentType(s string) (ArgumentType, error) {
	switch s {
	case "bool":
		return Bool, nil
	case "string":
		return Str, nil
	case "int":
		return Int, nil
	default:
		return 0, errors.InvalidArgumentType(s)
	}
}
