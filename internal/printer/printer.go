package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions for console output.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Field writes an aligned "label: value" line.
func Field(w io.Writer, label, value string) {
	pad := 8 - len(label) - 1
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(w, "  %s%s %s\n", Faint(label+":"), strings.Repeat(" ", pad), value)
}

// Mapping writes a "source -> dest" line.
func Mapping(w io.Writer, source, dest string) {
	fmt.Fprintf(w, "  %s %s %s\n", source, Faint("->"), dest)
}
