package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles for the chat view.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// User style for the user's side of the transcript.
	User lipgloss.Style

	// Assistant style for replies.
	Assistant lipgloss.Style

	// Muted style for intent annotations and help text.
	Muted lipgloss.Style

	// Error style for failed turns.
	Error lipgloss.Style

	// InputField style for the prompt area.
	InputField lipgloss.Style
}

// DefaultStyles returns the default chat styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		User: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")),
		Assistant: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
		InputField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
	}
}
