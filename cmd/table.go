/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"github.com/allbin/go-ka3005p/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

// column describes one column of a static table
type column struct {
	key   string
	title string
	width int
}

// renderStaticTable renders rows once, without a running program.
// Each row maps column keys to cell values.
func renderStaticTable(columns []column, rows []map[string]interface{}) string {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.NewColumn(c.key, c.title, c.width)
	}

	data := make([]table.Row, len(rows))
	for i, r := range rows {
		data[i] = table.NewRow(table.RowData(r))
	}

	t := table.New(cols).
		WithRows(data).
		BorderRounded().
		HeaderStyle(lipgloss.NewStyle().Bold(true).Foreground(colors.Mauve)).
		WithBaseStyle(lipgloss.NewStyle().Foreground(colors.Text).BorderForeground(colors.Surface2).Align(lipgloss.Left))

	return t.View()
}
