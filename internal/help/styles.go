// Package help renders usage, help, version, and error text for parsed
// CLI definitions. It consumes a flattened Page view; it never inspects
// the definition types directly.
package help

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	// Header is the style for "Usage:" and section titles (bold).
	Header lipgloss.Style

	// Term is the style for argument names and option spellings (cyan).
	Term lipgloss.Style

	// Placeholder is the style for value placeholders (yellow).
	Placeholder lipgloss.Style

	// Error is the style for the error line (red).
	Error lipgloss.Style
}

// DefaultStyles returns the standard styles.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true),
		Term:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // Red
	}
}
