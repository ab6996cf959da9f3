package errors

import (
	"errors"
	"fmt"
)

// Error represents an args error with context
type Error struct {
	// Code is the error code (e.g., "UNRECOGNIZED_FLAG")
	Code string
	// Message is the human-readable error message
	Message string
	// Cause describes why the error occurred
	Cause string
	// Action suggests what the user should do
	Action string
	// Underlying is the wrapped error
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Underlying
}

// New creates a new Error
func New(code, message, cause, action string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Action:  action,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code, message, cause, action string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Cause:      cause,
		Action:     action,
		Underlying: err,
	}
}

// Common error codes
const (
	// Schema errors
	ErrCodeInvalidArgumentType = "INVALID_ARGUMENT_TYPE"
	ErrCodeInvalidFlagName     = "INVALID_FLAG_NAME"
	ErrCodeSchemaNotFound      = "SCHEMA_NOT_FOUND"
	ErrCodeSchemaParseError    = "SCHEMA_PARSE_ERROR"
	ErrCodeSchemaPermission    = "SCHEMA_PERMISSION_ERROR"

	// Tokenizer errors
	ErrCodeUnrecognizedFlag = "UNRECOGNIZED_FLAG"
	ErrCodeUnexpectedEnd    = "UNEXPECTED_END_OF_ARGUMENTS"
	ErrCodeInvalidInteger   = "INVALID_INTEGER"

	// Collection errors
	ErrCodeUnexpectedToken = "UNEXPECTED_TOKEN"
	ErrCodeSchemaMissing   = "SCHEMA_MISSING"
	ErrCodeKeyNotInSchema  = "KEY_NOT_IN_SCHEMA"
	ErrCodeTypeMismatch    = "TYPE_MISMATCH"
)

// Common error constructors

// InvalidArgumentType creates an invalid argument type error
func InvalidArgumentType(typeName string) *Error {
	return New(
		ErrCodeInvalidArgumentType,
		fmt.Sprintf("invalid argument type: %q", typeName),
		"Argument types must be one of \"bool\", \"string\" or \"int\"",
		"Fix the type name in the schema declaration",
	)
}

// InvalidFlagName creates an invalid flag name error
func InvalidFlagName(name string) *Error {
	return New(
		ErrCodeInvalidFlagName,
		fmt.Sprintf("invalid flag name: %q", name),
		"Flag names must be exactly one character",
		"Use a single character such as 'v' for the flag name",
	)
}

// UnrecognizedFlag creates an unrecognized flag error
func UnrecognizedFlag(arg string) *Error {
	return New(
		ErrCodeUnrecognizedFlag,
		fmt.Sprintf("unrecognized flag: %s", arg),
		"The argument is not a '-' followed by a single character declared in the schema",
		"Check the command line against the declared flags",
	)
}

// UnexpectedEnd creates an unexpected end of arguments error
func UnexpectedEnd(expected string) *Error {
	return New(
		ErrCodeUnexpectedEnd,
		fmt.Sprintf("unexpected end of arguments, %s expected", expected),
		"The last flag requires a value but none was given",
		"Supply a value after the flag",
	)
}

// InvalidInteger creates an integer parse error
func InvalidInteger(value string, err error) *Error {
	return Wrap(
		err,
		ErrCodeInvalidInteger,
		fmt.Sprintf("invalid integer value: %q", value),
		"Integer flags accept signed decimal 64-bit values only",
		"Pass a decimal number such as 42 or -42",
	)
}

// UnexpectedToken creates an unexpected token error
func UnexpectedToken(actual, expected string) *Error {
	return New(
		ErrCodeUnexpectedToken,
		fmt.Sprintf("unexpected token: got %s, expected %s", actual, expected),
		"The token stream does not pair every typed flag with a value of its type",
		"Build the token stream with the tokenizer",
	)
}

// SchemaMissing creates a missing schema error
func SchemaMissing() *Error {
	return New(
		ErrCodeSchemaMissing,
		"token stream has no schema",
		"A collection needs the schema the tokens were produced with",
		"Tokenize the arguments with a non-nil schema",
	)
}

// KeyNotInSchema creates a key not found error
func KeyNotInSchema(name string) *Error {
	return New(
		ErrCodeKeyNotInSchema,
		fmt.Sprintf("key not found in schema: %q", name),
		"The flag is not declared in the schema",
		"Declare the flag in the schema or query a declared flag",
	)
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(name, declared, requested string) *Error {
	return New(
		ErrCodeTypeMismatch,
		fmt.Sprintf("type mismatch for %q: declared %s, requested %s", name, declared, requested),
		"The accessor does not match the type declared in the schema",
		fmt.Sprintf("Use the %s accessor for this flag", declared),
	)
}

// SchemaNotFound creates a schema file not found error
func SchemaNotFound(path string) *Error {
	return New(
		ErrCodeSchemaNotFound,
		fmt.Sprintf("Schema file not found: %s", path),
		"The specified schema file does not exist",
		"Check the file path or pass the flags inline with --flags",
	)
}

// SchemaParseError creates a schema file parse error
func SchemaParseError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeSchemaParseError,
		fmt.Sprintf("Failed to parse schema file: %s", path),
		"The schema file contains invalid syntax, structure, or unknown fields",
		"Review the schema file and fix any errors",
	)
}

// HasCode reports whether err or any error in its chain is an *Error with the given code
func HasCode(err error, code string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
