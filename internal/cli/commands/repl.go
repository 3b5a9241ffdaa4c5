package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const replPrompt = "leapunits> "

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	HistoryFile string
	NoHistory   bool
}

// lineReader is the part of *readline.Instance the loop needs.
type lineReader interface {
	Readline() (string, error)
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Start an interactive session that evaluates one calc expression per line.

History is kept across sessions. Type .help for commands, .quit to exit.`,
		Example: `  leapunits repl
  leapunits repl --no-history`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runREPL(commandContext(cmd), cmd, cc, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history-file", "", "History file (default: <user cache dir>/leapunits/history)")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "Do not read or write history")

	return cmd
}

func runREPL(ctx context.Context, cmd *cobra.Command, cc *CommandContext, opts *REPLOptions) error {
	historyFile := ""
	if !opts.NoHistory {
		historyFile = resolveHistoryFile(opts.HistoryFile)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(cc),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	cc.Logger.DebugContext(ctx, "repl started", "history", historyFile)

	cc.Renderer.Println("leapunits REPL")
	cc.Renderer.Println("Type .help for commands, .quit to exit")
	cc.Renderer.Println()

	return replLoop(ctx, cc, rl)
}

// resolveHistoryFile returns explicit or the default history path, creating
// its directory. It returns "" when no location is usable.
func resolveHistoryFile(explicit string) string {
	path := explicit
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(dir, "leapunits", "history")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return ""
	}
	return path
}

// replLoop evaluates lines from rl until EOF or a quit command.
func replLoop(ctx context.Context, cc *CommandContext, rl lineReader) error {
	eval := cc.Evaluator()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cc, line); quit {
				return nil
			}
			continue
		}

		result, err := eval.Eval(ctx, line)
		if err != nil {
			cc.Renderer.Error(err)
			continue
		}
		if err := cc.Renderer.Quantity(result); err != nil {
			return err
		}
	}
}

// handleDotCommand runs a dot-command and reports whether the REPL should exit.
func handleDotCommand(cc *CommandContext, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	r := cc.Renderer

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r.Writer())

	case ".units":
		opts := &UnitsOptions{}
		if len(parts) > 1 {
			opts.Kind = parts[1]
		}
		if err := runUnits(cc, opts); err != nil {
			r.Error(err)
		}

	case ".parse":
		if len(parts) < 2 {
			r.Warning("Usage: .parse <unit expression>")
			return false
		}
		if err := runParse(cc, strings.Join(parts[1:], " ")); err != nil {
			r.Error(err)
		}

	default:
		r.Warning(fmt.Sprintf("Unknown command: %s (type .help for commands)", command))
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help                 Show this help message
  .units [kind]         List registered units, optionally of one kind
  .parse <unit>         Show how a unit expression is understood
  .quit / .exit         Exit the REPL

Expressions:
  3 km + 141 m          Operators must be separated by spaces
  28 m/s to km/h        Convert with "to" or "in"
  Δ 5 degC + 20 degC    "Δ" or "delta" marks a difference

Tips:
  - Use arrow keys to navigate history
  - Tab completes dot-commands
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot-commands and kind names for .units.
func newREPLCompleter(cc *CommandContext) *readline.PrefixCompleter {
	kinds := make([]readline.PrefixCompleterInterface, 0, len(kindNames()))
	for _, name := range kindNames() {
		kinds = append(kinds, readline.PcItem(name))
	}

	symbols := func(string) []string {
		var out []string
		for _, u := range cc.Registry.All() {
			if u.Encoded() != "" {
				out = append(out, u.Encoded())
			}
		}
		return out
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".units", kinds...),
		readline.PcItem(".parse", readline.PcItemDynamic(symbols)),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
