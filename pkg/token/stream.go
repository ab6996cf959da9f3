package token

import "github.com/akam1o/args/pkg/schema"

// Stream is an append-only token sequence with a single forward cursor
type Stream struct {
	tokens []Token
	schema *schema.Schema
	pos    int
}

// NewStream creates an empty stream bound to s, which may be nil
func NewStream(s *schema.Schema) *Stream {
	return &Stream{schema: s}
}

// Add appends a token
func (s *Stream) Add(t Token) {
	s.tokens = append(s.tokens, t)
}

// Len returns the number of tokens
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i
func (s *Stream) At(i int) (Token, bool) {
	if i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Tokens returns a copy of all tokens
func (s *Stream) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}

// Schema returns the schema the stream was produced with, or nil
func (s *Stream) Schema() *schema.Schema {
	return s.schema
}

// Next returns the token under the cursor and advances it. The boolean is
// false once the stream is exhausted.
func (s *Stream) Next() (Token, bool) {
	t, ok := s.At(s.pos)
	if ok {
		s.pos++
	}
	return t, ok
}

// Pos returns the cursor position
func (s *Stream) Pos() int {
	return s.pos
}
