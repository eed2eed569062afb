package main

import (
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// showFileOpen opens the native file dialog. Every file type is listed;
// the extension is checked when the file is read.
func (a *App) showFileOpen(startDir string, done func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.log.Error().Err(err).Msg("file dialog failed")
			done("")
			return
		}
		if reader == nil {
			done("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		done(path)
	}, a.window)

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			fd.SetLocation(lister)
		} else {
			a.log.Debug().Err(err).Str("dir", startDir).Msg("cannot open start directory")
		}
	}

	fd.Show()
}

func (a *App) showWarning(title, message string) {
	dialog.NewCustom(title, "OK", warningContent(message), a.window).Show()
}

// warningContent lays out the warning icon beside the message
func warningContent(message string) fyne.CanvasObject {
	return container.NewBorder(nil, nil,
		widget.NewIcon(theme.WarningIcon()), nil,
		widget.NewLabel(message))
}

// startDir returns the configured dialog directory, falling back to the
// directory holding the executable
func (a *App) startDir() string {
	if a.cfg.Dialog.StartDir != "" {
		return a.cfg.Dialog.StartDir
	}

	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return ""
	}
	return dir
}
