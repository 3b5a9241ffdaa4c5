package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapunits/internal/cli/config"
)

// execute runs the root command in an isolated directory and returns stdout
// and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"version", "convert", "calc", "parse", "units", "repl", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestNewRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()
	flags := cmd.PersistentFlags()

	for _, name := range []string{"config", "output", "precision", "verbose"} {
		assert.NotNil(t, flags.Lookup(name), "missing flag --%s", name)
	}
	assert.Equal(t, "o", flags.Lookup("output").Shorthand)
	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
	assert.Equal(t, "-1", flags.Lookup("precision").DefValue)
}

func TestRootCmd_Convert(t *testing.T) {
	stdout, _, err := execute(t, "-o", "text", "convert", "1", "m", "cm")
	require.NoError(t, err)
	assert.Equal(t, "100 cm\n", stdout)
}

func TestRootCmd_ConvertMarkdownWhenPiped(t *testing.T) {
	stdout, _, err := execute(t, "convert", "--interval", "--", "-5", "degC", "degF")
	require.NoError(t, err)
	assert.Equal(t, "`-9 °F` (interval)\n", stdout)
}

func TestRootCmd_CalcJSON(t *testing.T) {
	stdout, _, err := execute(t, "-o", "json", "calc", "37 degC - 30 degC")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "degC", got["unit"])
	assert.Equal(t, true, got["interval"])
	assert.InDelta(t, 7.0, got["value"], 1e-9)
}

func TestRootCmd_Precision(t *testing.T) {
	stdout, _, err := execute(t, "-o", "text", "--precision", "2", "calc", "1 / 3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", stdout)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "leapunits.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output: json
units:
  - encoded: kn
    base: km/h
    scale: "463/250"
`), 0600))

	stdout, _, err := execute(t, "--config", cfgPath, "convert", "10", "kn", "km/h")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "km/h", got["unit"])
	assert.InDelta(t, 18.52, got["value"], 1e-9)
}

func TestRootCmd_InvalidOutput(t *testing.T) {
	_, _, err := execute(t, "-o", "xml", "calc", "1 m")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "-o", "text", "calc", "2 m * 3 m")
	require.NoError(t, err)
	assert.Equal(t, "6 m²\n", stdout)
	assert.Contains(t, stderr, "configuration loaded")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, "leapunits")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestGetConfig(t *testing.T) {
	assert.Equal(t, config.DefaultOutput, GetConfig(context.Background()).OutputFormat)

	cfg := config.Default()
	cfg.Precision = 3
	ctx := context.WithValue(context.Background(), configKey{}, cfg)
	assert.Same(t, cfg, GetConfig(ctx))
}
