package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles groups the lipgloss styles of the CLI report.
type Styles struct {
	// Input renders the original numeric text in verbose mode.
	Input lipgloss.Style
	// Output renders the grouped text.
	Output lipgloss.Style
	// Arrow renders the separator between input and output.
	Arrow lipgloss.Style
	// Summary renders the trailing count and timing line.
	Summary lipgloss.Style
	// Success renders confirmations such as a saved file.
	Success lipgloss.Style
}

// NewStyles builds styles rendering to w. Color is disabled when noColor is
// true, when NO_COLOR is set, or when w is not a terminal.
func NewStyles(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor || os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Input:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Output:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Arrow:   r.NewStyle().Foreground(lipgloss.Color("208")),
		Summary: r.NewStyle().Italic(true).Foreground(lipgloss.Color("141")),
		Success: r.NewStyle().Foreground(lipgloss.Color("82")),
	}
}

// PlainStyles returns styles that never emit escape codes.
func PlainStyles() Styles {
	return NewStyles(io.Discard, true)
}
