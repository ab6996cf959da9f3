package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/schema"
)

func newTestShell(t *testing.T) (*InteractiveShell, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	opts := &options{format: formatTable, logFormat: "text", out: &out, errOut: &errOut}
	if err := opts.setup(); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	s := schema.MustNew([]schema.Entry{
		{Name: "i", Type: "int"},
		{Name: "s", Type: "string"},
		{Name: "b", Type: "bool"},
	})
	return &InteractiveShell{opts: opts, schema: s}, &out
}

func TestProcessLine_ParsesFlags(t *testing.T) {
	sh, out := newTestShell(t)

	if _, err := sh.processLine(`-s "hello world" -i -3`); err != nil {
		t.Fatalf("processLine() error = %v", err)
	}

	for _, want := range []string{"hello world", "-3"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestProcessLine_Commands(t *testing.T) {
	sh, out := newTestShell(t)

	if _, err := sh.processLine("help"); err != nil {
		t.Fatalf("processLine(help) error = %v", err)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("help output = %q", out.String())
	}

	out.Reset()
	if _, err := sh.processLine("schema"); err != nil {
		t.Fatalf("processLine(schema) error = %v", err)
	}
	if !strings.Contains(out.String(), "-s    string") {
		t.Errorf("schema output = %q", out.String())
	}

	if exit, err := sh.processLine("  quit "); !exit || err != nil {
		t.Errorf("processLine(quit) = %v, %v, want true, nil", exit, err)
	}
	if exit, err := sh.processLine("exit"); !exit || err != nil {
		t.Errorf("processLine(exit) = %v, %v, want true, nil", exit, err)
	}
	if exit, err := sh.processLine(""); exit || err != nil {
		t.Errorf("processLine(\"\") = %v, %v, want false, nil", exit, err)
	}
}

func TestProcessLine_Errors(t *testing.T) {
	sh, _ := newTestShell(t)

	if exit, err := sh.processLine("-x"); exit || !errors.HasCode(err, errors.ErrCodeUnrecognizedFlag) {
		t.Errorf("processLine(-x) error = %v, want %s", err, errors.ErrCodeUnrecognizedFlag)
	}
	if _, err := sh.processLine(`-s "open`); err == nil || !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("processLine() error = %v, want syntax error", err)
	}
}
