package main

import (
	"fmt"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"csvviewer/internal/config"
	"csvviewer/internal/logger"
	"csvviewer/internal/reader"
	"csvviewer/internal/table"
	"csvviewer/internal/viewer"
)

func main() {
	log := logger.NewConsole(os.Stderr, zerolog.InfoLevel)

	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	mainApp := newApp(app.NewWithID("io.csvviewer.app"), cfg, log)
	mainApp.buildUI()
	mainApp.showAndRun()
}

func newApp(fyneApp fyne.App, cfg *config.Config, log zerolog.Logger) *App {
	env := viewer.Env{
		Loader:          reader.NewLoader(cfg.Loader),
		Layout:          table.LayoutFrom(cfg.Table),
		InvalidPathText: cfg.Dialog.InvalidPathText,
	}

	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		log:     log,
		ctrl:    viewer.NewController(env, log),
	}
	a.pickFile = a.showFileOpen
	a.warn = a.showWarning
	return a
}

func (a *App) showAndRun() {
	a.window.ShowAndRun()
}
