package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// ControlsTable renders the key bindings as a two-column table.
func ControlsTable(k KeyMap) string {
	var rows []table.Row
	for _, group := range k.FullHelp() {
		for _, b := range group {
			h := b.Help()
			rows = append(rows, table.Row{h.Key, h.Desc})
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Key", Width: 10},
			{Title: "Action", Width: 16},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // Static listing, no cursor
	t.SetStyles(s)

	return t.View()
}
