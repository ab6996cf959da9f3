package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/akam1o/args/pkg/cli"
	"github.com/akam1o/args/pkg/errors"
	"github.com/akam1o/args/pkg/logger"
	"github.com/akam1o/args/pkg/schema"
)

type options struct {
	schemaPath string
	inline     string
	format     string
	logFormat  string
	debug      bool

	out    io.Writer
	errOut io.Writer
	log    *logger.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "argsctl",
		Short: "Parse single-character flags against a typed schema",
		Long: `argsctl tokenizes an argument vector against a schema of
single-character flags (bool, string, int) and prints the typed result.

Examples:
  argsctl parse --flags i:int,s:string,b:bool app -i 42 -b -s hello
  argsctl parse --schema schema.yaml --format json app -b
  argsctl interactive --flags v:bool,n:int`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.schemaPath, "schema", "", "Schema file (.yaml, .yml or .toml)")
	pf.StringVar(&opts.inline, "flags", "", "Inline schema, e.g. i:int,s:string,b:bool")
	pf.StringVar(&opts.format, "format", "table", "Output format: table, json or yaml")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log output format: text or json")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(
		newParseCmd(opts),
		newSchemaCmd(opts),
		newInteractiveCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

func (o *options) setup() error {
	switch o.format {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("invalid format %q: must be 'table', 'json' or 'yaml'", o.format)
	}
	if o.logFormat != "text" && o.logFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", o.logFormat)
	}

	level := "warn"
	if o.debug {
		level = "debug"
	}
	o.log = logger.New("argsctl", &logger.Config{
		Level:  logger.ParseLevel(level),
		Format: o.logFormat,
		Output: o.errOut,
	})
	return nil
}

// loadSchema returns the schema from --schema or --flags
func (o *options) loadSchema() (*schema.Schema, error) {
	switch {
	case o.schemaPath != "" && o.inline != "":
		return nil, fmt.Errorf("--schema and --flags are mutually exclusive")
	case o.schemaPath != "":
		return schema.LoadFile(o.schemaPath, o.log.Named("schema"))
	case o.inline != "":
		return cli.ParseInlineSchema(o.inline)
	default:
		return nil, fmt.Errorf("a schema is required: pass --schema <file> or --flags <spec>")
	}
}

// logFailure records a coded failure with its cause and action when debug logging is on
func (o *options) logFailure(msg string, err error) {
	var e *errors.Error
	if !o.debug || o.log == nil || !errors.As(err, &e) {
		return
	}
	o.log.WithField("code", e.Code).ErrorWithCause(msg, err, e.Cause, e.Action)
}
