package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/akam1o/args/pkg/collection"
)

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [program [args...]]",
		Short: "Parse an argument vector and print the typed values",
		Long: `Parse treats its first positional argument as the program name and the
rest as the flags to parse. Everything after the program name is passed
through untouched, so no '--' separator is needed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args)
		},
	}
	// Stop at the program name so its flags reach the tokenizer
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runParse(opts *options, args []string) error {
	s, err := opts.loadSchema()
	if err != nil {
		opts.logFailure("Failed to load schema", err)
		return err
	}

	opts.log.Debug("Parsing arguments", slog.Any("args", args))

	c, err := collection.FromArgs(args, s, opts.log)
	if err != nil {
		opts.logFailure("Failed to parse arguments", err)
		return err
	}

	return FormatValues(opts.out, opts.format, c.Values())
}
