package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapunits/pkg/units"
)

// UnitsOptions holds options for the units command.
type UnitsOptions struct {
	Kind string
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand() *cobra.Command {
	opts := &UnitsOptions{}

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered units",
		Long: `List every registered unit: the built-in units plus any defined under
"units:" in leapunits.yaml.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # List all units
  leapunits units

  # Only lengths
  leapunits units --kind length

  # As JSON
  leapunits units -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runUnits(cc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "Only list units of this kind (e.g. length, temperature, speed)")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return kindNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runUnits(cc *CommandContext, opts *UnitsOptions) error {
	list := cc.Registry.All()

	if opts.Kind != "" {
		want := strings.ToLower(opts.Kind)
		filtered := list[:0]
		for _, u := range list {
			if u.Kind().Name() == want {
				filtered = append(filtered, u)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no units of kind %q (known kinds: %s)", opts.Kind, strings.Join(kindNames(), ", "))
		}
		list = filtered
	}

	return cc.Renderer.Units(list)
}

func kindNames() []string {
	kinds := []units.Kind{
		units.KindNumber, units.KindMass, units.KindTime, units.KindLength, units.KindTemperature,
		units.KindSpeed, units.KindFrequency, units.KindAcceleration, units.KindArea, units.KindVolume,
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}
	return names
}
