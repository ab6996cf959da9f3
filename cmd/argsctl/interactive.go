package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/akam1o/args/pkg/cli"
	"github.com/akam1o/args/pkg/collection"
	"github.com/akam1o/args/pkg/schema"
)

// programName is prepended to every line typed in the shell
const programName = "argsctl"

// InteractiveShell reads argument lines and parses each against one schema
type InteractiveShell struct {
	opts   *options
	schema *schema.Schema
	rl     *readline.Instance
}

// NewInteractiveShell creates a new interactive shell
func NewInteractiveShell(opts *options, s *schema.Schema) (*InteractiveShell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "args> ",
		HistoryFile:         filepath.Join(os.TempDir(), ".argsctl-history"),
		AutoComplete:        createCompleter(s),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		Stdout:              opts.out,
		Stderr:              opts.errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &InteractiveShell{opts: opts, schema: s, rl: rl}, nil
}

// Run reads lines until exit, EOF or interrupt
func (sh *InteractiveShell) Run() error {
	defer sh.rl.Close()

	fmt.Fprintln(sh.opts.out, "Type flags to parse them, 'help' for commands, 'exit' or 'quit' to exit")

	for {
		line, err := sh.rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			return nil
		}

		exit, err := sh.processLine(line)
		if err != nil {
			sh.opts.logFailure("Failed to parse line", err)
			fmt.Fprintf(sh.opts.errOut, "Error: %v\n", err)
		}
		if exit {
			return nil
		}
	}
}

// processLine handles a shell command or parses the line as flags. It reports
// true when the shell should exit.
func (sh *InteractiveShell) processLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	switch line {
	case "help", "?":
		showShellHelp(sh.opts.out)
		return false, nil
	case "schema":
		return false, FormatSchema(sh.opts.out, sh.opts.format, sh.schema.Entries())
	case "exit", "quit":
		return true, nil
	}

	parts, err := cli.TokenizeCommand(line)
	if err != nil {
		return false, fmt.Errorf("syntax error: %w", err)
	}

	args := append([]string{programName}, parts...)
	c, err := collection.FromArgs(args, sh.schema, sh.opts.log)
	if err != nil {
		return false, err
	}
	return false, FormatValues(sh.opts.out, sh.opts.format, c.Values())
}

func showShellHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  help, ?       Show this help message
  schema        Show the declared flags
  exit, quit    Leave the shell

Any other line is parsed as flags, e.g.:
  -i 42 -b -s "hello world"
`)
}

// createCompleter offers every declared flag
func createCompleter(s *schema.Schema) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("schema"),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	}
	for _, e := range s.Entries() {
		items = append(items, readline.PcItem("-"+e.Name))
	}
	return readline.NewPrefixCompleter(items...)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ: // Disable Ctrl+Z
		return r, false
	}
	return r, true
}

func newInteractiveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Parse flag lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadSchema()
			if err != nil {
				return err
			}
			sh, err := NewInteractiveShell(opts, s)
			if err != nil {
				return err
			}
			return sh.Run()
		},
	}
}
