package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <unit expression>",
		Short: "Show how a unit expression is understood",
		Long: `Parse a unit expression and show its encoded and pretty forms, its kind,
its exact multiplier relative to SI base units, and its parts.

Grammar: parts separated by spaces, each a symbol with an optional exponent
written as "^-2" or "⁻²". A single "/" negates the exponents after it.`,
		Example: `  leapunits parse "kg m/s^2"
  leapunits parse "s^-2 / m^-1"
  leapunits parse ft² --output yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runParse(cc, strings.Join(args, " "))
		},
	}
	return cmd
}

func runParse(cc *CommandContext, expr string) error {
	u, err := cc.Registry.Parse(expr)
	if err != nil {
		return err
	}
	return cc.Renderer.Unit(u)
}
