package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"csvviewer/internal/config"
	"csvviewer/internal/table"
	"csvviewer/internal/viewer"
)

// filePicker opens a file chooser rooted at startDir and reports the chosen
// path, or "" when the user cancels
type filePicker func(startDir string, done func(path string))

// warner shows a blocking warning
type warner func(title, message string)

type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	log     zerolog.Logger

	ctrl  *viewer.Controller
	model table.Model

	pickFile filePicker
	warn     warner

	// UI Elements
	pathEntry *widget.Entry
	browseBtn *widget.Button
	readBtn   *widget.Button
	grid      *widget.Table
}
