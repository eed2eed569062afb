package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"csvviewer/internal/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Right)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderModel draws m as a bordered text table: the index column first,
// then one column per data column
func renderModel(m table.Model) string {
	headers := append([]string{""}, m.Headings()...)

	rows := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = append([]string{row.Label}, row.Values...)
	}

	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle.Align(position(alignmentOf(m, col)))
		})

	return t.String()
}

// alignmentOf returns the alignment of a rendered column
func alignmentOf(m table.Model, col int) table.Alignment {
	if col == 0 {
		return m.IndexAlign
	}
	if col-1 < len(m.Columns) {
		return m.Columns[col-1].Align
	}
	return table.AlignLeading
}

func position(al table.Alignment) lipgloss.Position {
	if al == table.AlignTrailing {
		return lipgloss.Right
	}
	return lipgloss.Left
}
