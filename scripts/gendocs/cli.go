package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/leapunits/internal/calc"
	"github.com/leapstack-labs/leapunits/internal/cli"
	"github.com/leapstack-labs/leapunits/internal/cli/output"
	"github.com/leapstack-labs/leapunits/pkg/units"
)

// quickReference lists expressions shown on the CLI index page. Their
// results are computed when the docs are generated.
var quickReference = []struct {
	expr string
	note string
}{
	{"3 km + 141 m + 592 mm", "Sums take the bigger unit"},
	{"28 m/s to km/h", "Convert with `to` or `in`"},
	{"12 in to cm", "`in` before a unit is the inch"},
	{"37 degC - 30 degC", "Two readings differ by an interval"},
	{"Δ 5 degC + 20 degC", "`Δ` marks an interval operand"},
	{"100 km / 2 h to m/s", "Units combine under `*` and `/`"},
}

// generateCLIDocs writes index.md and one page per command to outDir.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	index, err := renderCLIIndex(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), index, 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, cmd := range documentedCommands(root) {
		page := renderCommandPage(cmd)
		if err := os.WriteFile(filepath.Join(outDir, cmd.Name()+".md"), page, 0600); err != nil {
			return fmt.Errorf("failed to write page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}
	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.IsAvailableCommand() {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// renderCLIIndex renders the overview page: commands, a quick reference of
// evaluated expressions, global options and their environment variables.
func renderCLIIndex(root *cobra.Command) ([]byte, error) {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for leapunits")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leapunits/cmd/leapunits@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Quick Reference")
	eval := calc.New(units.Default(), nil)
	rows = rows[:0]
	for _, ex := range quickReference {
		q, err := eval.Eval(context.Background(), ex.expr)
		if err != nil {
			return nil, fmt.Errorf("quick reference %q: %w", ex.expr, err)
		}
		result := output.FormatQuantity(q, -1)
		if q.Interval {
			result += " (interval)"
		}
		rows = append(rows, []string{InlineCode("leapunits calc " + ex.expr), InlineCode(result), ex.note})
	}
	w.Table([]string{"Command", "Result", "Note"}, rows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, root, root.PersistentFlags())

	w.Header(2, "Environment Variables")
	rows = rows[:0]
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Hidden {
			return
		}
		rows = append(rows, []string{InlineCode(envName(f.Name)), InlineCode("--" + f.Name)})
	})
	w.Table([]string{"Variable", "Overrides"}, rows)
	w.Paragraph("Flags take precedence over environment variables, which take precedence over `leapunits.yaml`.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success"},
		{InlineCode("1"), "Error, reported on stderr"},
	})

	return w.Bytes(), nil
}

// envName maps a flag to the environment variable the config loader reads.
func envName(flag string) string {
	return "LEAPUNITS_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// renderCommandPage renders the page of a single command.
func renderCommandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd, cmd.LocalFlags())
	}
	if cmd.HasAvailableInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}

	return w.Bytes()
}

// writeFlagsTable writes one row per visible flag. Flags with a completion
// function list the values it offers.
func writeFlagsTable(w *MarkdownWriter, cmd *cobra.Command, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = InlineCode("-" + f.Shorthand)
		}
		def := ""
		if f.DefValue != "" && f.Value.Type() != "bool" {
			def = InlineCode(f.DefValue)
		}
		desc := cleanDescription(f.Usage)
		if values := completionValues(cmd, f.Name); len(values) > 0 {
			quoted := make([]string, len(values))
			for i, v := range values {
				quoted[i] = InlineCode(v)
			}
			desc += " One of " + strings.Join(quoted, ", ") + "."
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, def, desc})
	})
	w.Table([]string{"Option", "Short", "Default", "Description"}, rows)
}

func completionValues(cmd *cobra.Command, flag string) []string {
	complete, ok := cmd.GetFlagCompletionFunc(flag)
	if !ok {
		return nil
	}
	values, _ := complete(cmd, nil, "")
	return values
}

// dedent strips the indentation shared by all non-blank lines.
func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
