// Package output renders CLI results for terminals, agents and scripts.
//
// The same result can be written as styled text (for a terminal), markdown
// (for pipes and agents), JSON or YAML. ModeAuto picks text on a TTY and
// markdown otherwise.
package output

import "fmt"

// OutputMode selects how results are rendered.
type OutputMode string

// Mode is shorthand for OutputMode.
type Mode = OutputMode

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// ParseMode converts a flag or config value to a mode. The empty string is
// ModeAuto.
func ParseMode(s string) (OutputMode, error) {
	switch OutputMode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeText, ModeMarkdown, ModeJSON, ModeYAML:
		return OutputMode(s), nil
	case "md":
		return ModeMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want auto, text, markdown, json or yaml)", s)
	}
}

// IsStructured reports whether m is a machine-readable format.
func (m OutputMode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
