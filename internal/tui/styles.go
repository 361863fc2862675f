package tui

import "github.com/charmbracelet/lipgloss"

// Styles collects every lipgloss style the viewer renders with.
type Styles struct {
	// Layout
	App       lipgloss.Style
	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Sidebar   lipgloss.Style
	Content   lipgloss.Style
	Footer    lipgloss.Style

	// Checklist items
	Title       lipgloss.Style
	Item        lipgloss.Style
	ItemChecked lipgloss.Style
	ItemCursor  lipgloss.Style

	// Feedback
	Status  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the viewer's color scheme.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		App:       lipgloss.NewStyle().Padding(0, 1),
		TabBar:    lipgloss.NewStyle().MarginBottom(1),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")),
		Sidebar:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Content:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Footer:    lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("245")),

		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Item:        lipgloss.NewStyle(),
		ItemChecked: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		ItemCursor:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")),

		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
