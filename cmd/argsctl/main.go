package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akam1o/args/pkg/errors"
)

// Exit codes
const (
	ExitSuccess        = 0
	ExitOperationError = 1
	ExitUsageError     = 2
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(os.Args[1:])
	os.Exit(exitCode(cmd.Execute(), os.Stderr))
}

// exitCode reports err on w and maps it to a process exit code. Malformed
// arguments and schemas are usage errors; anything else is an operation error.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	var e *errors.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "Error: %s\n", e.Error())
		if e.Cause != "" {
			fmt.Fprintf(w, "  Cause:  %s\n", e.Cause)
		}
		if e.Action != "" {
			fmt.Fprintf(w, "  Action: %s\n", e.Action)
		}
		return ExitUsageError
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitOperationError
}
