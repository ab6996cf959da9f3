package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(opts.out, "argsctl\n")
			fmt.Fprintf(opts.out, "  Version:    %s\n", Version)
			fmt.Fprintf(opts.out, "  Commit:     %s\n", Commit)
			fmt.Fprintf(opts.out, "  Build Date: %s\n", BuildDate)
		},
	}
}
