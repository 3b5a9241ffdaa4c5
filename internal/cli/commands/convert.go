package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapunits/pkg/units"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	Interval bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between units",
		Long: `Convert a value from one unit to another of the same kind.

Units are unit expressions: a registered symbol ("km", "°C") or a product of
symbols with exponents ("kg m/s^2", "m s⁻¹"). Quote expressions that contain
spaces.

Temperatures are points by default, so 30 degC converts to 86 degF. Pass
--interval to convert a difference instead: 30 degC of change is 54 degF.`,
		Example: `  # Convert a speed
  leapunits convert 28 m/s km/h

  # Convert a temperature reading
  leapunits convert 330 degC degF

  # Convert a temperature difference
  leapunits convert --interval 10 °C °F

  # Negative values go after --
  leapunits convert -- -40 degC degF

  # Composite units need quotes
  leapunits convert 9.81 "m/s²" "km h^-2" --output json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runConvert(commandContext(cmd), cc, args[0], args[1], args[2], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Interval, "interval", "i", false, "Treat the value as a difference, not a point")

	return cmd
}

func runConvert(ctx context.Context, cc *CommandContext, value, from, to string, opts *ConvertOptions) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}

	fromUnit, err := cc.Registry.Parse(from)
	if err != nil {
		return fmt.Errorf("source unit: %w", err)
	}
	toUnit, err := cc.Registry.Parse(to)
	if err != nil {
		return fmt.Errorf("target unit: %w", err)
	}

	q := units.Quantity{Value: v, Unit: fromUnit, Interval: opts.Interval}
	result, err := q.ConvertTo(toUnit)
	if err != nil {
		return err
	}

	cc.Logger.DebugContext(ctx, "converted",
		slog.String("from", q.String()),
		slog.String("to", result.String()),
		slog.Bool("interval", q.Interval))

	return cc.Renderer.Quantity(result)
}
