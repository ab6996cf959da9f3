// Package cli provides line splitting and inline schema parsing for the args CLI
package cli

import (
	"fmt"
	"strings"

	"github.com/akam1o/args/pkg/schema"
)

// TokenizeCommand splits a command line into raw arguments, respecting quotes
// Example: `-s "hello world" -b` -> ["-s", "hello world", "-b"], nil
// Both '"' and '\'' quote; a quoted empty string yields an empty argument.
// Returns error if quotes are unmatched
func TokenizeCommand(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	var quote rune
	inToken := false

	for _, char := range line {
		switch {
		case quote != 0:
			if char == quote {
				quote = 0
			} else {
				current.WriteRune(char)
			}
		case char == '"' || char == '\'':
			quote = char
			inToken = true
		case char == ' ' || char == '\t': // Treat both space and tab as whitespace
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(char)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unmatched quote in command")
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// ParseInlineSchema parses a comma separated list of name:type pairs
// Example: "i:int,s:string,b:bool"
func ParseInlineSchema(spec string) (*schema.Schema, error) {
	var entries []schema.Entry

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, typ, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid flag declaration %q: want name:type", part)
		}
		entries = append(entries, schema.Entry{
			Name: strings.TrimSpace(name),
			Type: strings.TrimSpace(typ),
		})
	}

	return schema.New(entries)
}
