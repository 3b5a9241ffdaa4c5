package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// NewCalcCommand creates the calc command.
func NewCalcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an expression over quantities",
		Long: `Evaluate an arithmetic expression over quantities with units.

Fields are separated by spaces. Operators (+, -, *, /) must stand alone;
a "/" inside a field belongs to the unit ("m/s"). Each operand is a number
followed by unit symbols. Prefix an operand with "Δ" or "delta" to mark it
as a difference rather than a point. End with "to <unit>" or "in <unit>" to
convert the result.

Adding a difference to a point yields a point; subtracting two points yields
the difference between them.`,
		Example: `  # Sum lengths; the result uses the bigger unit
  leapunits calc "3 km + 141 m + 592 mm"

  # Convert the result
  leapunits calc "100.8 km/h to m/s"

  # Difference between two temperature readings
  leapunits calc "37 °C - 86 °F"

  # Warm a reading by a difference
  leapunits calc "Δ 25 degC + 86 degF"

  # Machine-readable output
  leapunits calc "10 m / 2 s" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runCalc(commandContext(cmd), cc, strings.Join(args, " "))
		},
	}

	// Operands such as "-5" must not be read as flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runCalc(ctx context.Context, cc *CommandContext, expr string) error {
	result, err := cc.Evaluator().Eval(ctx, expr)
	if err != nil {
		return err
	}
	return cc.Renderer.Quantity(result)
}
