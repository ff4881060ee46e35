package month

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	done       lipgloss.Style
	inProgress lipgloss.Style
	notStarted lipgloss.Style
	noData     lipgloss.Style
	today      lipgloss.Style
	summary    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		done:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		inProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		notStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noData:     lipgloss.NewStyle().Faint(true),
		today:      lipgloss.NewStyle().Bold(true).Underline(true),
		summary:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
