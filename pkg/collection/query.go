package collection

import (
	"strconv"

	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/schema"
)

// Value describes one declared flag and what the parse produced for it
type Value struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Set  bool   `json:"set" yaml:"set"`
	// Value is the rendered value; empty when the flag was not set
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Bool returns whether the boolean flag name was passed. An absent flag is false.
func (c *Collection) Bool(name string) (bool, error) {
	if v, ok := c.bools[name]; ok {
		return v, nil
	}
	if err := c.checkType(name, schema.Bool); err != nil {
		return false, err
	}
	return false, nil
}

// Int returns the value of the integer flag name. The boolean is false when
// the flag was declared but not passed.
func (c *Collection) Int(name string) (int64, bool, error) {
	if v, ok := c.ints[name]; ok {
		return v, true, nil
	}
	if err := c.checkType(name, schema.Int); err != nil {
		return 0, false, err
	}
	return 0, false, nil
}

// Str returns the value of the string flag name. The boolean is false when
// the flag was declared but not passed.
func (c *Collection) Str(name string) (string, bool, error) {
	if v, ok := c.strings[name]; ok {
		return v, true, nil
	}
	if err := c.checkType(name, schema.Str); err != nil {
		return "", false, err
	}
	return "", false, nil
}

// MustBool is like Bool but panics when name is not a declared bool flag
func (c *Collection) MustBool(name string) bool {
	v, err := c.Bool(name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustInt is like Int but panics when name is not a declared int flag
func (c *Collection) MustInt(name string) (int64, bool) {
	v, ok, err := c.Int(name)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// MustStr is like Str but panics when name is not a declared string flag
func (c *Collection) MustStr(name string) (string, bool) {
	v, ok, err := c.Str(name)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// Schema returns the collection's own copy of the schema
func (c *Collection) Schema() *schema.Schema {
	return c.schema.Clone()
}

// Values lists every declared flag in declaration order
func (c *Collection) Values() []Value {
	entries := c.schema.Entries()
	values := make([]Value, 0, len(entries))

	for _, e := range entries {
		v := Value{Name: e.Name, Type: e.Type}
		switch e.Type {
		case schema.Bool.String():
			v.Set = c.bools[e.Name]
			v.Value = strconv.FormatBool(v.Set)
		case schema.Int.String():
			if i, ok := c.ints[e.Name]; ok {
				v.Set = true
				v.Value = strconv.FormatInt(i, 10)
			}
		case schema.Str.String():
			if s, ok := c.strings[e.Name]; ok {
				v.Set = true
				v.Value = s
			}
		}
		values = append(values, v)
	}

	return values
}

// checkType fails unless name is declared with type want
func (c *Collection) checkType(name string, want schema.ArgumentType) error {
	declared, ok, err := c.schema.Lookup(name)
	if err != nil {
		return err
	}
	if !ok {
		return errors.KeyNotInSchema(name)
	}
	if declared != want {
		return errors.TypeMismatch(name, declared.String(), want.String())
	}
	return nil
}
