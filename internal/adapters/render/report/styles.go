package report

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	empty    lipgloss.Style
	footer   lipgloss.Style
	negative lipgloss.Style
	table    table.Styles
}

func newStyles() styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	tableStyles.Cell = tableStyles.Cell.Foreground(lipgloss.Color("252"))
	tableStyles.Selected = lipgloss.NewStyle()

	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:    lipgloss.NewStyle().Faint(true),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		table:    tableStyles,
	}
}
