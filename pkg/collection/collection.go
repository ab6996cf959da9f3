// Package collection builds a typed, read-only view of parsed flags from a
// token stream and answers typed lookups against the schema.
package collection

import (
	"log/slog"

	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/logger"
	"github.com/akam1o/args/pkg/schema"
	"github.com/akam1o/args/pkg/token"
)

// Collection holds the parsed flag values. It is immutable once built.
type Collection struct {
	schema  *schema.Schema
	ints    map[string]int64
	strings map[string]string
	bools   map[string]bool
}

func newCollection(s *schema.Schema) *Collection {
	return &Collection{
		schema:  s.Clone(),
		ints:    make(map[string]int64),
		strings: make(map[string]string),
		bools:   make(map[string]bool),
	}
}

// FromArgs tokenizes args against s and builds a Collection
func FromArgs(args []string, s *schema.Schema, log *logger.Logger) (*Collection, error) {
	stream, err := token.NewTokenizer(s, log.Named("tokenizer")).Tokenize(args)
	if err != nil {
		return nil, err
	}
	return Build(stream, log.Named("collection"))
}

// MustFromArgs is like FromArgs but panics on malformed arguments
func MustFromArgs(args []string, s *schema.Schema) *Collection {
	c, err := FromArgs(args, s, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Build consumes stream from its cursor to the end. The stream must carry a
// schema, and every int or string flag must be followed by a value of its type.
// A flag that occurs more than once keeps its last value.
func Build(stream *token.Stream, log *logger.Logger) (*Collection, error) {
	if stream == nil || stream.Schema() == nil {
		return nil, errors.SchemaMissing()
	}

	c := newCollection(stream.Schema())

	for {
		tok, ok := stream.Next()
		if !ok {
			break
		}

		switch tok.Kind {
		case token.ProgramName:
			continue
		case token.Flag:
			if err := c.storeFlag(tok, stream); err != nil {
				return nil, err
			}
		default:
			return nil, errors.UnexpectedToken(tok.String(), token.Flag.String())
		}
	}

	if log != nil {
		log.WithField("tokens", stream.Len()).Debug("Built collection",
			slog.Int("ints", len(c.ints)),
			slog.Int("strings", len(c.strings)),
			slog.Int("bools", len(c.bools)),
		)
	}

	return c, nil
}

// storeFlag records a flag token, pulling its value from stream when the type needs one.
// The flag must be declared in the schema with the type the token carries, so a
// name never lands in more than one map.
func (c *Collection) storeFlag(flag token.Token, stream *token.Stream) error {
	declared, ok, err := c.schema.Lookup(flag.Name)
	if err != nil {
		return err
	}
	if !ok {
		return errors.UnexpectedToken(flag.String(), "a flag declared in the schema")
	}
	if declared != flag.Type {
		return errors.UnexpectedToken(flag.String(), token.NewFlag(declared, flag.Name).String())
	}

	switch flag.Type {
	case schema.Bool:
		c.bools[flag.Name] = true
	case schema.Int:
		v, err := expectValue(stream, token.IntValue)
		if err != nil {
			return err
		}
		c.ints[flag.Name] = v.Int
	case schema.Str:
		v, err := expectValue(stream, token.StrValue)
		if err != nil {
			return err
		}
		c.strings[flag.Name] = v.Str
	default:
		return errors.UnexpectedToken(flag.String(), "a bool, int or string flag")
	}
	return nil
}

func expectValue(stream *token.Stream, kind token.Kind) (token.Token, error) {
	tok, ok := stream.Next()
	if !ok {
		return token.Token{}, errors.UnexpectedToken("end of stream", kind.String())
	}
	if tok.Kind != kind {
		return token.Token{}, errors.UnexpectedToken(tok.String(), kind.String())
	}
	return tok, nil
}
