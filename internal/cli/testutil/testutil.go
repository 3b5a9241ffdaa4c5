// Package testutil captures and checks renderer output in CLI tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapunits/internal/cli/output"
)

// TestRenderer is a Renderer whose stdout and stderr go to buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer returns a TestRenderer in mode, posing as a terminal when
// isTTY is set.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	tr := &TestRenderer{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}
	tr.Renderer = output.NewRendererWithTTY(tr.Out, tr.ErrOut, isTTY, mode)
	return tr
}

// NewTestRendererAuto resolves to markdown, as output is not a terminal.
func NewTestRendererAuto() *TestRenderer { return NewTestRenderer(output.ModeAuto, false) }

// NewTestRendererText poses as a terminal, so styles are active.
func NewTestRendererText() *TestRenderer { return NewTestRenderer(output.ModeText, true) }

func NewTestRendererMarkdown() *TestRenderer { return NewTestRenderer(output.ModeMarkdown, false) }
func NewTestRendererJSON() *TestRenderer     { return NewTestRenderer(output.ModeJSON, false) }
func NewTestRendererYAML() *TestRenderer     { return NewTestRenderer(output.ModeYAML, false) }

// Output returns what was written to stdout.
func (tr *TestRenderer) Output() string { return tr.Out.String() }

// ErrorOutput returns what was written to stderr.
func (tr *TestRenderer) ErrorOutput() string { return tr.ErrOut.String() }

// DecodeQuantity decodes a quantity rendered in JSON mode.
func DecodeQuantity(t *testing.T, tr *TestRenderer) output.QuantityOutput {
	t.Helper()
	var q output.QuantityOutput
	if err := json.Unmarshal(tr.Out.Bytes(), &q); err != nil {
		t.Fatalf("output is not a JSON quantity: %v\n%s", err, tr.Output())
	}
	return q
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI fails if s contains terminal escape sequences.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("unexpected ANSI escape codes in %q", s)
	}
}

// AssertValidMarkdown checks fences, code spans, headings and that every
// row of a table has as many cells as its header.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	if n := strings.Count(md, "```"); n%2 != 0 {
		t.Errorf("unbalanced code fences: %d", n)
	}

	columns := 0
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("line %d: empty heading", i+1)
		}
		if !strings.Contains(trimmed, "```") && strings.Count(trimmed, "`")%2 != 0 {
			t.Errorf("line %d: unbalanced code span: %q", i+1, line)
		}

		if !strings.HasPrefix(trimmed, "|") {
			columns = 0
			continue
		}
		cells := strings.Count(trimmed, "|") - strings.Count(trimmed, `\|`)
		if columns == 0 {
			columns = cells
		} else if cells != columns {
			t.Errorf("line %d: table row has %d separators, header has %d", i+1, cells, columns)
		}
	}
}

// AssertOutputMode checks that what tr captured looks like mode's output.
func AssertOutputMode(t *testing.T, tr *TestRenderer, mode output.OutputMode) {
	t.Helper()

	switch mode {
	case output.ModeMarkdown:
		AssertNoANSI(t, tr.Output()+tr.ErrorOutput())
		AssertValidMarkdown(t, tr.Output())
	case output.ModeJSON:
		AssertNoANSI(t, tr.Output()+tr.ErrorOutput())
		if !json.Valid(tr.Out.Bytes()) {
			t.Errorf("output is not valid JSON: %s", tr.Output())
		}
	case output.ModeYAML:
		AssertNoANSI(t, tr.Output()+tr.ErrorOutput())
		var v any
		if err := yaml.Unmarshal(tr.Out.Bytes(), &v); err != nil {
			t.Errorf("output is not valid YAML: %v", err)
		}
	}
}
