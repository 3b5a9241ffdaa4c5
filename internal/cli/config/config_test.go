package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapunits/internal/testutil"
	"github.com/leapstack-labs/leapunits/pkg/rational"
	"github.com/leapstack-labs/leapunits/pkg/units"
)

// writeConfig writes a leapunits.yaml into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "leapunits.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

// newFlags mirrors the global flags of the root command.
func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "output format")
	flags.Int("precision", DefaultPrecision, "fraction digits")
	flags.BoolP("verbose", "v", false, "verbose output")
	return flags
}

// isolate keeps the user's own config files out of discovery.
func isolate(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	isolate(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Units)
	assert.Same(t, units.Default(), cfg.Registry)
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `output: json
precision: 3
verbose: true
units:
  - encoded: kn
    base: m/s
    scale: 1852/3600
  - encoded: nmi
    pretty: NM
    base: m
    scale: 1852
  - encoded: dozen
    scale: 12
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Precision)
	assert.True(t, cfg.Verbose)
	require.Len(t, cfg.Units, 3)
	assert.Equal(t, "463/900", cfg.Units[0].Scale.String())
	assert.Equal(t, "1852/1", cfg.Units[1].Scale.String())

	require.True(t, cfg.Registry.Sealed())

	knot, ok := cfg.Registry.Lookup("kn")
	require.True(t, ok)
	assert.Equal(t, units.KindSpeed, knot.Kind())

	nmi, ok := cfg.Registry.Lookup("NM")
	require.True(t, ok)
	assert.Equal(t, "nmi", nmi.Encoded())

	dozen, ok := cfg.Registry.Lookup("dozen")
	require.True(t, ok)
	assert.True(t, dozen.Kind().IsNumber())

	// The process-wide registry is untouched.
	_, ok = units.Lookup("kn")
	assert.False(t, ok)
}

func TestLoadConfig_DiscoversFileUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "leapunits.yml"), []byte("output: markdown\n"), 0600))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	isolate(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "leapunits.yml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfig_Precedence(t *testing.T) {
	cfgPath := writeConfig(t, "output: text\nprecision: 2\n")

	t.Run("env overrides file", func(t *testing.T) {
		ResetConfig()
		t.Setenv("LEAPUNITS_OUTPUT", "json")

		cfg, err := LoadConfig(cfgPath, nil)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, 2, cfg.Precision)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("LEAPUNITS_OUTPUT", "json")
		t.Setenv("LEAPUNITS_PRECISION", "4")

		flags := newFlags()
		require.NoError(t, flags.Set("output", "yaml"))

		cfg, err := LoadConfig(cfgPath, flags)
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.OutputFormat)
		assert.Equal(t, 4, cfg.Precision, "unset flag falls back to env")
	})

	t.Run("unset flags keep file values", func(t *testing.T) {
		ResetConfig()

		cfg, err := LoadConfig(cfgPath, newFlags())
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.OutputFormat)
		assert.Equal(t, 2, cfg.Precision)
	})

	t.Run("bool env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("LEAPUNITS_VERBOSE", "true")

		cfg, err := LoadConfig(cfgPath, nil)
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   error
		errSubstr string
	}{
		{"bad output", "output: html\n", ErrInvalidConfig, "output"},
		{"precision too high", "precision: 18\n", ErrInvalidConfig, "precision"},
		{"precision too low", "precision: -2\n", ErrInvalidConfig, "precision"},
		{"missing encoded", "units:\n  - base: m\n", ErrInvalidConfig, "units[0].encoded"},
		{"symbol with slash", "units:\n  - encoded: m/h\n    base: m\n", ErrInvalidConfig, "units[0]"},
		{"duplicate symbol", "units:\n  - encoded: km\n    base: m\n    scale: 1000\n", units.ErrDuplicateUnit, "units[0] (km)"},
		{"unknown base", "units:\n  - encoded: ly\n    base: parsec\n", units.ErrUnknownUnit, "parsec"},
		{"custom base", "units:\n  - encoded: R\n    base: degF\n", units.ErrInvalidUnitSyntax, "linear"},
		{"superscript suffix", "units:\n  - encoded: mx\n    pretty: \"m²x²\"\n    base: m\n", units.ErrInvalidUnitSyntax, "units[0] (mx)"},
		{"bad scale", "units:\n  - encoded: x\n    base: m\n    scale: 1/0\n", rational.ErrInvalidRational, "decode"},
		{"fractional scale", "units:\n  - encoded: x\n    base: m\n    scale: 0.5\n", rational.ErrInvalidRational, "n/d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errSubstr)
			assert.Nil(t, GetCurrentConfig())
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("every output format", func(t *testing.T) {
		for _, format := range OutputFormats {
			cfg := Default()
			cfg.OutputFormat = format
			assert.NoError(t, cfg.Validate(), format)
		}
	})

	t.Run("precision bounds", func(t *testing.T) {
		cfg := Default()
		cfg.Precision = MaxPrecision
		assert.NoError(t, cfg.Validate())
		cfg.Precision = MaxPrecision + 1
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestBuildRegistry_ChainedDefinitions(t *testing.T) {
	cfg := Default()
	cfg.Units = []UnitDefinition{
		{Encoded: "ftn", Base: "wk", Scale: rational.MustOf(2, 1)},
		{Encoded: "furlong", Base: "m", Scale: rational.MustOf(201168, 1000)},
		{Encoded: "fpf", Base: "furlong/ftn"},
	}

	r, err := cfg.BuildRegistry()
	require.NoError(t, err)

	fpf, ok := r.Lookup("fpf")
	require.True(t, ok)
	assert.Equal(t, units.KindSpeed, fpf.Kind())

	q, err := units.New(1, fpf).ConvertTo(units.MeterPerSecond)
	require.NoError(t, err)
	assert.InDelta(t, 201.168/1209600, q.Value, 1e-15)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, ctx.Value(LoggerKey()))
}
