package main

import (
	"csvviewer/internal/viewer"
)

func (a *App) onBrowse() {
	// clear before the dialog opens; a cancelled dialog leaves it empty
	a.pathEntry.SetText("")

	a.pickFile(a.startDir(), func(path string) {
		a.apply(a.ctrl.Dispatch(viewer.Event{Command: viewer.CommandBrowse, Path: path}))
	})
}

func (a *App) onPathEdited(text string) {
	a.ctrl.Dispatch(viewer.Event{Command: viewer.CommandEdit, Path: text})
}

func (a *App) onRead() {
	// the field is the source of truth even if OnChanged was skipped
	a.ctrl.Dispatch(viewer.Event{Command: viewer.CommandEdit, Path: a.pathEntry.Text})
	a.apply(a.ctrl.Dispatch(viewer.Event{Command: viewer.CommandLoad}))
}

// apply draws a render instruction
func (a *App) apply(r viewer.Render) {
	switch r.Kind {
	case viewer.RenderPath:
		a.pathEntry.SetText(r.Path)
	case viewer.RenderTable:
		a.renderTable(r.Table)
	case viewer.RenderWarning:
		a.warn(a.cfg.Dialog.WarningTitle, r.Warning)
	}
}
