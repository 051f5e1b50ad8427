package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the wizard screens.
type Styles struct {
	Title          lipgloss.Style
	Description    lipgloss.Style
	Art            lipgloss.Style
	Option         lipgloss.Style
	Selected       lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Status         lipgloss.Style
	Faint          lipgloss.Style
	ActiveDot      string
	InactiveDot    string
}

// DefaultStyles returns the default theme.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#a78bfa"}
	muted := lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Description: lipgloss.NewStyle().Foreground(muted),
		Art: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2),
		Option:   lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(0).Bold(true).Foreground(accent),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(accent).
			Padding(0, 3),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(muted).
			Background(lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}).
			Padding(0, 3),
		Status:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#f59e0b")),
		Faint:       lipgloss.NewStyle().Faint(true),
		ActiveDot:   lipgloss.NewStyle().Foreground(accent).Render("●"),
		InactiveDot: lipgloss.NewStyle().Foreground(muted).Render("○"),
	}
}
