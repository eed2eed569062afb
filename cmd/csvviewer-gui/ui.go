package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"csvviewer/internal/table"
)

func (a *App) buildUI() {
	window := a.fyneApp.NewWindow(a.cfg.Window.Title)
	window.Resize(fyne.NewSize(a.cfg.Window.Width, a.cfg.Window.Height))

	// path row on top, grid fills the rest
	content := container.NewBorder(
		a.createReaderPanel(), // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		a.createGrid(),        // center
	)

	window.SetContent(container.NewPadded(content))
	a.window = window
}

func (a *App) createReaderPanel() fyne.CanvasObject {
	a.pathEntry = widget.NewEntry()
	a.pathEntry.OnChanged = a.onPathEdited

	a.browseBtn = widget.NewButton(a.cfg.Window.BrowseText, a.onBrowse)
	a.readBtn = widget.NewButton(a.cfg.Window.ReadText, a.onRead)

	row := container.NewBorder(nil, nil,
		widget.NewLabel(a.cfg.Window.PathLabel),
		container.NewHBox(a.browseBtn, a.readBtn),
		a.pathEntry)

	return container.NewVBox(row, widget.NewSeparator())
}

// createGrid builds the table. Widget column 0 is the pinned row index;
// widget column i+1 shows data column i.
func (a *App) createGrid() fyne.CanvasObject {
	a.grid = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(a.model.Rows), len(a.model.Columns) + 1
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Col == 0 {
				label.Alignment = textAlign(a.model.IndexAlign)
				if id.Row < len(a.model.Rows) {
					label.SetText(a.model.Rows[id.Row].Label)
				} else {
					label.SetText("")
				}
				return
			}
			if id.Col-1 < len(a.model.Columns) {
				label.Alignment = textAlign(a.model.Columns[id.Col-1].Align)
			}
			label.SetText(a.model.Cell(id.Row, id.Col-1))
		},
	)

	a.grid.ShowHeaderColumn = false
	a.grid.StickyColumnCount = 1
	a.grid.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	a.grid.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		label.Alignment = fyne.TextAlignTrailing
		label.SetText(a.columnHeading(id.Col))
	}
	a.grid.SetColumnWidth(0, a.cfg.Table.IndexWidth)

	return a.grid
}

// columnHeading returns the header text for a widget column
func (a *App) columnHeading(col int) string {
	if col <= 0 || col-1 >= len(a.model.Columns) {
		return ""
	}
	return a.model.Columns[col-1].Heading
}

// renderTable replaces everything the grid shows with m
func (a *App) renderTable(m table.Model) {
	a.model = m

	a.grid.UnselectAll()
	a.grid.SetColumnWidth(0, m.IndexWidth)
	for i, col := range m.Columns {
		a.grid.SetColumnWidth(i+1, col.Width)
	}
	a.grid.Refresh()
}

func textAlign(al table.Alignment) fyne.TextAlign {
	if al == table.AlignTrailing {
		return fyne.TextAlignTrailing
	}
	return fyne.TextAlignLeading
}
