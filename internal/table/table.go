package table

import (
	"strconv"

	"csvviewer/internal/config"
	"csvviewer/internal/reader"
)

// Alignment is the horizontal placement of cell text
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignTrailing
)

// Layout holds the fixed column widths of the grid
type Layout struct {
	IndexWidth  float32
	ColumnWidth float32
}

// LayoutFrom builds a layout from table settings
func LayoutFrom(cfg config.TableConfig) Layout {
	return Layout{
		IndexWidth:  cfg.IndexWidth,
		ColumnWidth: cfg.ColumnWidth,
	}
}

// Column is one data column of the grid
type Column struct {
	ID      int
	Heading string
	Width   float32
	Align   Alignment
}

// Row is one displayed row, labelled with its zero-based index
type Row struct {
	Index  int
	Label  string
	Values []string
}

// Model is everything the grid widget needs to draw a dataset
type Model struct {
	IndexWidth float32
	IndexAlign Alignment
	Columns    []Column
	Rows       []Row
}

// Build lays out every row of ds. The column count is the width of the
// widest row; shorter rows are padded with empty cells.
func Build(ds *reader.Dataset, layout Layout) Model {
	width := ds.Width()

	m := Model{
		IndexWidth: layout.IndexWidth,
		IndexAlign: AlignTrailing,
		Columns:    make([]Column, width),
		Rows:       make([]Row, ds.Len()),
	}

	for i := range m.Columns {
		m.Columns[i] = Column{
			ID:      i,
			Heading: strconv.Itoa(i),
			Width:   layout.ColumnWidth,
			Align:   AlignTrailing,
		}
	}

	for i, record := range ds.Rows() {
		values := make([]string, width)
		copy(values, record)
		m.Rows[i] = Row{
			Index:  i,
			Label:  strconv.Itoa(i),
			Values: values,
		}
	}

	return m
}

// Cell returns the text at a data row and column, or "" when out of range
func (m Model) Cell(row, col int) string {
	if row < 0 || row >= len(m.Rows) {
		return ""
	}
	values := m.Rows[row].Values
	if col < 0 || col >= len(values) {
		return ""
	}
	return values[col]
}

// Headings returns the column headings in order
func (m Model) Headings() []string {
	headings := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		headings[i] = col.Heading
	}
	return headings
}

// Empty reports whether there is nothing to display
func (m Model) Empty() bool {
	return len(m.Rows) == 0 && len(m.Columns) == 0
}
