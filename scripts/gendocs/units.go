package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/leapstack-labs/leapunits/internal/cli/output"
	"github.com/leapstack-labs/leapunits/pkg/units"
)

// generateUnitsDocs writes the reference page of built-in units.
func generateUnitsDocs(outDir string) error {
	log.Printf("Generating units docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Units", "Built-in units of leapunits")
	w.GeneratedMarker()

	w.Header(1, "Units")
	w.Paragraph("Every unit is accepted in its encoded form (ASCII, as typed) and its pretty form (as displayed). " +
		"Multipliers are exact fractions relative to the SI base units of the kind.")

	groups := make(map[string][]output.UnitOutput)
	for _, u := range units.All() {
		out := output.NewUnitOutput(u)
		groups[out.Kind] = append(groups[out.Kind], out)
	}
	kinds := make([]string, 0, len(groups))
	for kind := range groups {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	headers := []string{"Encoded", "Pretty", "Multiplier", "Notes"}
	for _, kind := range kinds {
		w.Header(2, output.Title(kind))
		w.Paragraph(fmt.Sprintf("Dimension: %s", InlineCode(groups[kind][0].Dimension)))

		var rows [][]string
		for _, u := range groups[kind] {
			notes := ""
			if u.Custom {
				notes = "Offset scale, distinguishes points from intervals"
			}
			rows = append(rows, []string{InlineCode(u.Encoded), InlineCode(u.Pretty), InlineCode(u.Multiplier), notes})
		}
		w.Table(headers, rows)
	}

	w.Header(2, "Composite Units")
	w.Paragraph("Units combine with juxtaposition, `/` and integer powers. Both forms parse:")
	w.CodeBlock("text", `m s^-2    m/s²
kg m^2    kg m²
km/h      km h^-1`)

	filename := filepath.Join(outDir, "units.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated units.md")
	return nil
}
