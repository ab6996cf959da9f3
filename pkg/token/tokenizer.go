package token

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/logger"
	"github.com/akam1o/args/pkg/schema"
)

// state is the tokenizer's position in the flag/value grammar
type state int

const (
	stateInit state = iota
	stateExpectFlag
	stateExpectString
	stateExpectInt
)

// String returns a string representation of the state
func (s state) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateExpectFlag:
		return "expect-flag"
	case stateExpectString:
		return "expect-string"
	case stateExpectInt:
		return "expect-int"
	default:
		return "unknown"
	}
}

// Tokenizer walks a raw argument vector and emits tokens according to a schema
type Tokenizer struct {
	schema *schema.Schema
	log    *logger.Logger
}

// NewTokenizer creates a tokenizer. Both s and log may be nil; a nil schema
// declares no flags.
func NewTokenizer(s *schema.Schema, log *logger.Logger) *Tokenizer {
	return &Tokenizer{schema: s, log: log}
}

// Tokenize is shorthand for NewTokenizer(s, nil).Tokenize(args)
func Tokenize(args []string, s *schema.Schema) (*Stream, error) {
	return NewTokenizer(s, nil).Tokenize(args)
}

// Tokenize converts args, whose first element is the program name, into a
// token stream. It fails on undeclared flags, malformed integers, and on
// running out of arguments while a value is expected.
func (tz *Tokenizer) Tokenize(args []string) (*Stream, error) {
	stream := NewStream(tz.schema)
	st := stateInit

	for i, arg := range args {
		next, tok, err := transition(st, arg, tz.schema)
		if err != nil {
			if tz.log != nil {
				tz.log.WithField("state", st.String()).Debug("Tokenize failed",
					slog.Int("index", i),
					slog.String("arg", arg),
					slog.Any("error", err),
				)
			}
			return nil, err
		}
		stream.Add(tok)
		st = next
	}

	switch st {
	case stateExpectInt:
		return nil, errors.UnexpectedEnd("integer")
	case stateExpectString:
		return nil, errors.UnexpectedEnd("string")
	}

	if tz.log != nil {
		tz.log.Debug("Tokenized arguments",
			slog.Int("args", len(args)),
			slog.Int("tokens", stream.Len()),
		)
	}

	return stream, nil
}

// transition consumes one raw argument in state st and returns the next
// state together with the token it emits
func transition(st state, arg string, s *schema.Schema) (state, Token, error) {
	switch st {
	case stateInit:
		return stateExpectFlag, NewProgramName(), nil

	case stateExpectFlag:
		name, ok := flagName(arg)
		if !ok {
			return st, Token{}, errors.UnrecognizedFlag(arg)
		}
		t, declared, err := s.Lookup(name)
		if err != nil {
			return st, Token{}, err
		}
		if !declared {
			return st, Token{}, errors.UnrecognizedFlag(arg)
		}
		switch t {
		case schema.Int:
			return stateExpectInt, NewFlag(t, name), nil
		case schema.Str:
			return stateExpectString, NewFlag(t, name), nil
		default:
			return stateExpectFlag, NewFlag(t, name), nil
		}

	case stateExpectInt:
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return st, Token{}, errors.InvalidInteger(arg, err)
		}
		return stateExpectFlag, NewIntValue(v), nil

	case stateExpectString:
		return stateExpectFlag, NewStrValue(arg), nil
	}

	return st, Token{}, errors.UnrecognizedFlag(arg)
}

// flagName strips the leading '-' and reports whether exactly one character remains
func flagName(arg string) (string, bool) {
	name, ok := strings.CutPrefix(arg, "-")
	if !ok || utf8.RuneCountInString(name) != 1 {
		return "", false
	}
	return name, true
}
