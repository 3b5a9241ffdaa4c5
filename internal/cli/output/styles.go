package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Value    lipgloss.Style
	Unit     lipgloss.Style
	Kind     lipgloss.Style
	Interval lipgloss.Style
}

// NewStyles builds styles bound to w. Without a TTY the ASCII profile is
// used, so no escape codes are written.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	profile := termenv.Ascii
	if isTTY {
		profile = termenv.EnvColorProfile()
	}
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))

	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Info:    r.NewStyle().Foreground(lipgloss.Color("12")),

		Value:    r.NewStyle().Bold(true),
		Unit:     r.NewStyle().Foreground(lipgloss.Color("13")),
		Kind:     r.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		Interval: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}
