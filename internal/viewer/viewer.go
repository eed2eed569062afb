package viewer

import (
	"errors"
	"fmt"

	"csvviewer/internal/reader"
	"csvviewer/internal/table"
	"csvviewer/internal/validator"
)

// Command names a user action
type Command string

const (
	CommandBrowse Command = "browse"
	CommandEdit   Command = "edit"
	CommandLoad   Command = "load"
)

// Event is a command plus its input. Path is the picked or typed path for
// browse and edit, and is ignored by load.
type Event struct {
	Command Command
	Path    string
}

// RenderKind tells the window what to redraw
type RenderKind int

const (
	RenderNone RenderKind = iota
	RenderPath
	RenderTable
	RenderWarning
)

func (k RenderKind) String() string {
	switch k {
	case RenderPath:
		return "path"
	case RenderTable:
		return "table"
	case RenderWarning:
		return "warning"
	default:
		return "none"
	}
}

// Render is the drawing instruction produced by a command
type Render struct {
	Kind    RenderKind
	Path    string
	Table   table.Model
	Warning string
	Err     error
}

// State is everything the window shows
type State struct {
	Path    string
	Dataset *reader.Dataset
}

// Populated reports whether a dataset has been loaded
func (s State) Populated() bool {
	return s.Dataset != nil
}

// DatasetLoader reads a dataset from a path
type DatasetLoader interface {
	Load(path string) (*reader.Dataset, error)
}

// Env carries the collaborators and texts the commands need
type Env struct {
	Loader          DatasetLoader
	Layout          table.Layout
	InvalidPathText string
}

// Handler is a pure state transition for one command
type Handler func(s State, ev Event, env Env) (State, Render)

var handlers = map[Command]Handler{
	CommandBrowse: func(s State, ev Event, _ Env) (State, Render) { return Browse(s, ev.Path) },
	CommandEdit:   func(s State, ev Event, _ Env) (State, Render) { return Edit(s, ev.Path) },
	CommandLoad:   func(s State, _ Event, env Env) (State, Render) { return Load(s, env) },
}

// HandlerFor returns the handler registered for cmd
func HandlerFor(cmd Command) (Handler, bool) {
	h, ok := handlers[cmd]
	return h, ok
}

// Browse replaces the path with the one picked in the file dialog.
// A cancelled dialog picks "".
func Browse(s State, picked string) (State, Render) {
	s.Path = picked
	return s, Render{Kind: RenderPath, Path: picked}
}

// Edit records a path typed into the field. The field already shows it.
func Edit(s State, text string) (State, Render) {
	s.Path = text
	return s, Render{Kind: RenderNone}
}

// Load reads the current path. On success the dataset is replaced and the
// whole grid is redrawn; on failure the state is returned unchanged.
func Load(s State, env Env) (State, Render) {
	ds, err := safeLoad(env.Loader, s.Path)
	if err != nil {
		return s, Render{Kind: RenderWarning, Warning: warningText(err, env), Err: err}
	}

	s.Dataset = ds
	return s, Render{Kind: RenderTable, Table: table.Build(ds, env.Layout)}
}

func safeLoad(loader DatasetLoader, path string) (ds *reader.Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			ds = nil
			err = fmt.Errorf("failed to load %s: %v", path, r)
		}
	}()

	if loader == nil {
		return nil, errors.New("no loader configured")
	}
	ds, err = loader.Load(path)
	if err == nil && ds == nil {
		ds = reader.NewDataset(nil)
	}
	return ds, err
}

func warningText(err error, env Env) string {
	var verr *validator.ValidationError
	if errors.As(err, &verr) && env.InvalidPathText != "" {
		return env.InvalidPathText
	}
	return err.Error()
}
