// Package config provides configuration management for the leapunits CLI.
//
// Configuration is read from defaults, a leapunits.yaml file, LEAPUNITS_*
// environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"github.com/leapstack-labs/leapunits/pkg/rational"
	"github.com/leapstack-labs/leapunits/pkg/units"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string           `koanf:"output"`
	Precision    int              `koanf:"precision"`
	Verbose      bool             `koanf:"verbose"`
	Units        []UnitDefinition `koanf:"units"`

	// Registry holds the built-in units plus Units, sealed. It is set by
	// LoadConfig.
	Registry *units.Registry `koanf:"-"`
}

// UnitDefinition describes an extra linear unit as a multiple of a base unit
// expression:
//
//	units:
//	  - encoded: kn
//	    base: m/s
//	    scale: 1852/3600
type UnitDefinition struct {
	Encoded string            `koanf:"encoded"`
	Pretty  string            `koanf:"pretty"` // defaults to Encoded
	Base    string            `koanf:"base"`
	Scale   rational.Rational `koanf:"scale"` // defaults to 1
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPrecision = -1     // Shortest representation that round-trips
	MaxPrecision     = 17
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"auto", "text", "markdown", "json", "yaml"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Precision:    DefaultPrecision,
		Registry:     units.Default(),
	}
}
