package collection

import (
	"reflect"
	"strings"
	"testing"

	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/schema"
	"github.com/akam1o/args/pkg/token"
)

func fullSchema(t *testing.T) *schema.Schema {
	t.Helper()
	return schema.MustNew([]schema.Entry{
		{Name: "i", Type: "int"},
		{Name: "s", Type: "string"},
		{Name: "b", Type: "bool"},
	})
}

// mustPanicWithCode runs fn and checks it panics with an *errors.Error carrying code
func mustPanicWithCode(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %s", code)
		}
		err, ok := r.(error)
		if !ok || !errors.HasCode(err, code) {
			t.Errorf("panic value = %v, want %s", r, code)
		}
	}()
	fn()
}

func TestFromArgs_MultipleFlags(t *testing.T) {
	c, err := FromArgs([]string{"app_name", "-i", "42", "-b", "-s", "string"}, fullSchema(t), nil)
	if err != nil {
		t.Fatalf("FromArgs() error = %v", err)
	}

	if v, ok := c.MustInt("i"); !ok || v != 42 {
		t.Errorf("Int(\"i\") = %d, %v, want 42, true", v, ok)
	}
	if v, ok := c.MustStr("s"); !ok || v != "string" {
		t.Errorf("Str(\"s\") = %q, %v, want \"string\", true", v, ok)
	}
	if !c.MustBool("b") {
		t.Error("Bool(\"b\") = false, want true")
	}
}

func TestFromArgs_OrderIndependence(t *testing.T) {
	reversed := schema.MustNew([]schema.Entry{
		{Name: "b", Type: "bool"},
		{Name: "s", Type: "string"},
		{Name: "i", Type: "int"},
	})
	args := []string{"app", "-s", "string", "-b", "-i", "42"}

	for _, s := range []*schema.Schema{fullSchema(t), reversed} {
		c := MustFromArgs(args, s)
		if v, _ := c.MustInt("i"); v != 42 {
			t.Errorf("Int(\"i\") = %d, want 42", v)
		}
		if v, _ := c.MustStr("s"); v != "string" {
			t.Errorf("Str(\"s\") = %q, want \"string\"", v)
		}
		if !c.MustBool("b") {
			t.Error("Bool(\"b\") = false, want true")
		}
	}
}

func TestCollection_Defaults(t *testing.T) {
	c := MustFromArgs([]string{"app"}, fullSchema(t))

	if c.MustBool("b") {
		t.Error("Bool(\"b\") = true, want false")
	}
	if _, ok := c.MustInt("i"); ok {
		t.Error("Int(\"i\") present, want absent")
	}
	if _, ok := c.MustStr("s"); ok {
		t.Error("Str(\"s\") present, want absent")
	}
}

func TestCollection_RoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c *Collection)
	}{
		{
			name: "boolean presence",
			args: []string{"app", "-b"},
			check: func(t *testing.T, c *Collection) {
				if !c.MustBool("b") {
					t.Error("Bool(\"b\") = false, want true")
				}
			},
		},
		{
			name: "string",
			args: []string{"app", "-s", "hello"},
			check: func(t *testing.T, c *Collection) {
				if v, ok := c.MustStr("s"); !ok || v != "hello" {
					t.Errorf("Str(\"s\") = %q, %v, want \"hello\", true", v, ok)
				}
			},
		},
		{
			name: "negative integer",
			args: []string{"app", "-i", "-42"},
			check: func(t *testing.T, c *Collection) {
				if v, ok := c.MustInt("i"); !ok || v != -42 {
					t.Errorf("Int(\"i\") = %d, %v, want -42, true", v, ok)
				}
			},
		},
		{
			name: "repeated flag keeps last value",
			args: []string{"app", "-s", "a", "-s", "b"},
			check: func(t *testing.T, c *Collection) {
				if v, _ := c.MustStr("s"); v != "b" {
					t.Errorf("Str(\"s\") = %q, want \"b\"", v)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromArgs(tt.args, fullSchema(t), nil)
			if err != nil {
				t.Fatalf("FromArgs() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestCollection_TypeMismatch(t *testing.T) {
	onlyStr := MustFromArgs([]string{"app"}, schema.MustNew([]schema.Entry{{Name: "s", Type: "string"}}))
	onlyInt := MustFromArgs([]string{"app"}, schema.MustNew([]schema.Entry{{Name: "i", Type: "int"}}))

	if _, _, err := onlyStr.Int("s"); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Int(\"s\") error = %v, want %s", err, errors.ErrCodeTypeMismatch)
	}
	if _, err := onlyStr.Bool("s"); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Bool(\"s\") error = %v, want %s", err, errors.ErrCodeTypeMismatch)
	}
	if _, _, err := onlyInt.Str("i"); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Str(\"i\") error = %v, want %s", err, errors.ErrCodeTypeMismatch)
	}

	mustPanicWithCode(t, errors.ErrCodeTypeMismatch, func() { onlyStr.MustInt("s") })
	mustPanicWithCode(t, errors.ErrCodeTypeMismatch, func() { onlyStr.MustBool("s") })
	mustPanicWithCode(t, errors.ErrCodeTypeMismatch, func() { onlyInt.MustStr("i") })
}

func TestCollection_KeyNotInSchema(t *testing.T) {
	c := MustFromArgs([]string{"app"}, fullSchema(t))

	if _, err := c.Bool("x"); !errors.HasCode(err, errors.ErrCodeKeyNotInSchema) {
		t.Errorf("Bool(\"x\") error = %v, want %s", err, errors.ErrCodeKeyNotInSchema)
	}
	mustPanicWithCode(t, errors.ErrCodeKeyNotInSchema, func() { c.MustStr("z") })
}

func TestCollection_InvalidFlagName(t *testing.T) {
	c := MustFromArgs([]string{"app"}, fullSchema(t))

	for _, name := range []string{"", "long"} {
		if _, _, err := c.Int(name); !errors.HasCode(err, errors.ErrCodeInvalidFlagName) {
			t.Errorf("Int(%q) error = %v, want %s", name, err, errors.ErrCodeInvalidFlagName)
		}
		if _, err := c.Bool(name); !errors.HasCode(err, errors.ErrCodeInvalidFlagName) {
			t.Errorf("Bool(%q) error = %v, want %s", name, err, errors.ErrCodeInvalidFlagName)
		}
	}
	mustPanicWithCode(t, errors.ErrCodeInvalidFlagName, func() { c.MustStr("") })
}

func TestFromArgs_PropagatesTokenizerErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown flag", []string{"app", "-x"}, errors.ErrCodeUnrecognizedFlag},
		{"truncated value", []string{"app", "-i"}, errors.ErrCodeUnexpectedEnd},
		{"bad integer", []string{"app", "-i", "abc"}, errors.ErrCodeInvalidInteger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromArgs(tt.args, fullSchema(t), nil); !errors.HasCode(err, tt.code) {
				t.Errorf("FromArgs() error = %v, want %s", err, tt.code)
			}
			mustPanicWithCode(t, tt.code, func() { MustFromArgs(tt.args, fullSchema(t)) })
		})
	}
}

func TestFromArgs_Idempotent(t *testing.T) {
	args := []string{"app", "-i", "7", "-s", "x"}
	a := MustFromArgs(args, fullSchema(t))
	b := MustFromArgs(args, fullSchema(t))

	if !reflect.DeepEqual(a.Values(), b.Values()) {
		t.Errorf("Values() differ: %v vs %v", a.Values(), b.Values())
	}
}

func TestBuild_MalformedStreams(t *testing.T) {
	s := fullSchema(t)

	tests := []struct {
		name   string
		tokens []token.Token
		want   string
	}{
		{
			name:   "int flag followed by string value",
			tokens: []token.Token{token.NewProgramName(), token.NewFlag(schema.Int, "i"), token.NewStrValue("x")},
			want:   `got STR_VALUE("x"), expected INT_VALUE`,
		},
		{
			name:   "string flag at end of stream",
			tokens: []token.Token{token.NewFlag(schema.Str, "s")},
			want:   "got end of stream, expected STR_VALUE",
		},
		{
			name:   "bare int value",
			tokens: []token.Token{token.NewProgramName(), token.NewIntValue(1)},
			want:   "got INT_VALUE(1), expected FLAG",
		},
		{
			name:   "flag type disagrees with schema",
			tokens: []token.Token{token.NewFlag(schema.Int, "s"), token.NewIntValue(1)},
			want:   "got FLAG(int s), expected FLAG(string s)",
		},
		{
			name:   "undeclared flag",
			tokens: []token.Token{token.NewProgramName(), token.NewFlag(schema.Bool, "x")},
			want:   "got FLAG(bool x), expected a flag declared in the schema",
		},
		{
			name:   "flag type out of range",
			tokens: []token.Token{token.NewFlag(schema.ArgumentType(7), "b")},
			want:   "got FLAG(unknown b), expected FLAG(bool b)",
		},
		{
			name:   "bare string value after bool",
			tokens: []token.Token{token.NewFlag(schema.Bool, "b"), token.NewStrValue("v")},
			want:   `got STR_VALUE("v"), expected FLAG`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := token.NewStream(s)
			for _, tok := range tt.tokens {
				stream.Add(tok)
			}
			_, err := Build(stream, nil)
			if !errors.HasCode(err, errors.ErrCodeUnexpectedToken) {
				t.Fatalf("Build() error = %v, want %s", err, errors.ErrCodeUnexpectedToken)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build() error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestBuild_NameNeverStoredUnderTwoTypes(t *testing.T) {
	s := schema.MustNew([]schema.Entry{{Name: "x", Type: "string"}})
	stream := token.NewStream(s)
	for _, tok := range []token.Token{
		token.NewFlag(schema.Int, "x"),
		token.NewIntValue(1),
		token.NewFlag(schema.Str, "x"),
		token.NewStrValue("a"),
		token.NewFlag(schema.Bool, "x"),
	} {
		stream.Add(tok)
	}

	c, err := Build(stream, nil)
	if !errors.HasCode(err, errors.ErrCodeUnexpectedToken) {
		t.Fatalf("Build() error = %v, want %s", err, errors.ErrCodeUnexpectedToken)
	}
	if c != nil {
		t.Errorf("Build() collection = %v, want nil", c)
	}
}

func TestBuild_RequiresSchema(t *testing.T) {
	stream := token.NewStream(nil)
	stream.Add(token.NewProgramName())

	if _, err := Build(stream, nil); !errors.HasCode(err, errors.ErrCodeSchemaMissing) {
		t.Errorf("Build() error = %v, want %s", err, errors.ErrCodeSchemaMissing)
	}
	if _, err := Build(nil, nil); !errors.HasCode(err, errors.ErrCodeSchemaMissing) {
		t.Errorf("Build(nil) error = %v, want %s", err, errors.ErrCodeSchemaMissing)
	}
}

func TestBuild_ExhaustsStream(t *testing.T) {
	stream, err := token.Tokenize([]string{"app", "-b", "-i", "3"}, fullSchema(t))
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if _, err := Build(stream, nil); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if stream.Pos() != stream.Len() {
		t.Errorf("Pos() = %d, want %d", stream.Pos(), stream.Len())
	}
}

func TestCollection_SchemaSnapshot(t *testing.T) {
	s := fullSchema(t)
	c := MustFromArgs([]string{"app"}, s)

	if !reflect.DeepEqual(c.Schema().Entries(), s.Entries()) {
		t.Errorf("Schema().Entries() = %v, want %v", c.Schema().Entries(), s.Entries())
	}
	if c.Schema() == s {
		t.Error("Schema() returned the caller's schema, want a copy")
	}
}

func TestCollection_Values(t *testing.T) {
	c := MustFromArgs([]string{"app", "-i", "-5", "-b"}, fullSchema(t))

	want := []Value{
		{Name: "i", Type: "int", Set: true, Value: "-5"},
		{Name: "s", Type: "string"},
		{Name: "b", Type: "bool", Set: true, Value: "true"},
	}
	if got := c.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %+v, want %+v", got, want)
	}
}

func TestCollection_QueryAllDeclaredNeverFails(t *testing.T) {
	cases := [][]string{
		{"app"},
		{"app", "-b"},
		{"app", "-i", "0", "-s", ""},
		{"app", "-s", "-i", "-i", "9", "-b", "-b"},
	}
	for _, args := range cases {
		c, err := FromArgs(args, fullSchema(t), nil)
		if err != nil {
			t.Fatalf("FromArgs(%q) error = %v", args, err)
		}
		if _, err := c.Bool("b"); err != nil {
			t.Errorf("Bool(\"b\") error = %v", err)
		}
		if _, _, err := c.Int("i"); err != nil {
			t.Errorf("Int(\"i\") error = %v", err)
		}
		if _, _, err := c.Str("s"); err != nil {
			t.Errorf("Str(\"s\") error = %v", err)
		}
	}
}
