package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/leapunits/pkg/units"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("%w: output %q: must be one of %s",
			ErrInvalidConfig, c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.Precision < DefaultPrecision || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d: must be -1 or between 0 and %d",
			ErrInvalidConfig, c.Precision, MaxPrecision)
	}

	for i, def := range c.Units {
		if strings.TrimSpace(def.Encoded) == "" {
			return fmt.Errorf("%w: units[%d].encoded is required", ErrInvalidConfig, i)
		}
		if strings.ContainsAny(def.Encoded+def.Pretty, " \t/^") {
			return fmt.Errorf("%w: units[%d] (%s): symbols may not contain whitespace, '/' or '^'",
				ErrInvalidConfig, i, def.Encoded)
		}
	}
	return nil
}

// BuildRegistry returns a sealed registry holding the built-in units and
// every definition in c.Units, in order. A definition may use units defined
// before it as its base.
func (c *Config) BuildRegistry() (*units.Registry, error) {
	if len(c.Units) == 0 {
		return units.Default(), nil
	}

	r := units.NewBuiltinRegistry()
	for i, def := range c.Units {
		pretty := def.Pretty
		if pretty == "" {
			pretty = def.Encoded
		}
		if _, err := r.Define(def.Encoded, pretty, def.Base, def.Scale); err != nil {
			return nil, fmt.Errorf("%w: units[%d] (%s): %w", ErrInvalidConfig, i, def.Encoded, err)
		}
	}
	r.Seal()
	return r, nil
}
