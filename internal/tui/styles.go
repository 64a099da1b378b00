package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the questionnaire view.
type Styles struct {
	Progress    lipgloss.Style
	BarFilled   lipgloss.Style
	BarEmpty    lipgloss.Style
	Question    lipgloss.Style
	Hint        lipgloss.Style
	Error       lipgloss.Style
	Title       lipgloss.Style
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the green-accented questionnaire theme.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#4CAF50")
	muted := lipgloss.Color("#666666")
	return Styles{
		Progress:    lipgloss.NewStyle().Foreground(muted),
		BarFilled:   lipgloss.NewStyle().Foreground(accent),
		BarEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")),
		Question:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#333333")).MarginTop(1),
		Hint:        lipgloss.NewStyle().Italic(true).Foreground(muted),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#D32F2F")),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1),
		StatLabel:   lipgloss.NewStyle().Foreground(muted),
		StatValue:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Description: lipgloss.NewStyle().Foreground(muted),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")).MarginTop(1),
	}
}
