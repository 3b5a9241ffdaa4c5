package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapunits/internal/calc"
	"github.com/leapstack-labs/leapunits/internal/cli/config"
	"github.com/leapstack-labs/leapunits/internal/cli/output"
	"github.com/leapstack-labs/leapunits/pkg/units"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *units.Registry
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored in the command's context.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()

	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	r.SetPrecision(cfg.Precision)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(commandContext(cmd)),
		Registry: cfg.Registry,
		Renderer: r,
	}, nil
}

// Evaluator returns an expression evaluator over the configured registry.
func (c *CommandContext) Evaluator() *calc.Evaluator {
	return calc.New(c.Registry, c.Logger)
}

// getConfig returns the current configuration, or the defaults when the
// command runs without the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// commandContext returns cmd's context, which is nil for commands that were
// not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
