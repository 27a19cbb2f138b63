package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used by the dashboard views.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
	Dialog   lipgloss.Style
	Danger   lipgloss.Style

	StatusBusy    lipgloss.Style
	StatusIdle    lipgloss.Style
	StatusWaiting lipgloss.Style
	StatusError   lipgloss.Style
	StatusUnknown lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
}

func defaultStyles() Styles {
	accent := lipgloss.Color("#D97757")
	dim := lipgloss.Color("240")
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#DCDCDC")),
		Dim:      lipgloss.NewStyle().Foreground(dim),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true),
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim),
		Dialog:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		Danger:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#DC3545")).Padding(1, 2),

		StatusBusy:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		StatusIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#50C878")),
		StatusWaiting: lipgloss.NewStyle().Foreground(accent),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")),
		StatusUnknown: lipgloss.NewStyle().Foreground(dim),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#50C878")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")),
	}
}

var styles = defaultStyles()
