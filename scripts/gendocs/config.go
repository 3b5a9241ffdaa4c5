package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/leapunits/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema returns the configuration schema, mirroring
// internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown, json, yaml"},
		{Name: "precision", Type: "int", Default: strconv.Itoa(config.DefaultPrecision),
			Description: fmt.Sprintf("Fraction digits in results, -1 for the shortest exact form (max %d)", config.MaxPrecision)},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Log evaluation steps to stderr"},
		{Name: "units", Type: "list", Default: "-", Description: "Additional units, see below"},
	}
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapunits configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("leapunits reads `leapunits.yaml` from the current directory or its parents, " +
		"then from the user config directory. `--config` names a file explicitly.")

	w.Header(2, "Settings")
	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(f.Default), f.Description})
	}
	w.Table([]string{"Field", "Type", "Default", "Description"}, rows)

	w.Header(2, "Custom Units")
	w.Paragraph("Each entry defines a linear unit as an exact multiple of a base unit expression. " +
		"Entries may build on units defined earlier in the list.")
	w.Table([]string{"Field", "Required", "Description"}, [][]string{
		{InlineCode("encoded"), "Yes", "ASCII symbol, no spaces, `/` or `^`"},
		{InlineCode("pretty"), "No", "Display symbol, defaults to the encoded one; may not end in a superscript digit or `⁻`"},
		{InlineCode("base"), "Yes", "Unit expression the scale applies to"},
		{InlineCode("scale"), "No", "Integer or fraction such as `463/250`, defaults to 1"},
	})

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# leapunits.yaml
output: auto
precision: -1

units:
  - encoded: kn
    base: km/h
    scale: 463/250
  - encoded: nmi
    pretty: NM
    base: m
    scale: 1852
  - encoded: ftn
    base: wk
    scale: 2`)

	w.Header(2, "Environment Variables")
	w.Paragraph("Scalar settings can be overridden with `LEAPUNITS_` variables, e.g. `LEAPUNITS_OUTPUT=json`.")

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
