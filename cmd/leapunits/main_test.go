// Package main provides end-to-end tests for the leapunits CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapunits/internal/cli"
	"github.com/leapstack-labs/leapunits/internal/cli/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(out, "leapunits") {
		t.Errorf("version output should contain 'leapunits', got: %s", out)
	}
}

func TestHelpCommand(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"convert", "calc", "parse", "units", "repl", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(out, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, out)
		}
	}
}

func TestCalcCommandJSON(t *testing.T) {
	out, err := run(t, "-o", "json", "calc", "100 km / 2 h to m/s")
	if err != nil {
		t.Fatalf("calc command error = %v", err)
	}

	var result struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("calc output is not JSON: %v\n%s", err, out)
	}
	if result.Unit != "m/s" {
		t.Errorf("unit = %q, want m/s", result.Unit)
	}
	if diff := result.Value - 13.888888888888889; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("value = %v, want 13.888...", result.Value)
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "100", "degC", "K"}, "373.15 K\n"},
		{[]string{"convert", "-i", "100", "degC", "degF"}, "180 °F Δ\n"},
		{[]string{"convert", "1", "in", "mm"}, "25.4 mm\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, append([]string{"--output", "text"}, tt.args...)...)
			if err != nil {
				t.Fatalf("convert error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestConvertIncompatible(t *testing.T) {
	if _, err := run(t, "convert", "1", "m", "s"); err == nil {
		t.Error("expected an error converting metres to seconds")
	}
}

func TestConfigFileUnits(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "leapunits.yaml")
	content := `
units:
  - encoded: nmi
    pretty: NM
    base: m
    scale: 1852
`
	if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, err := run(t, "--config", cfgPath, "-o", "text", "convert", "2", "nmi", "km")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if out != "3.704 km\n" {
		t.Errorf("output = %q, want %q", out, "3.704 km\n")
	}
}
