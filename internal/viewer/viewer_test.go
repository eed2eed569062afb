package viewer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvviewer/internal/config"
	"csvviewer/internal/logger"
	"csvviewer/internal/reader"
	"csvviewer/internal/table"
	"csvviewer/internal/validator"
)

func newTestEnv(t *testing.T) Env {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return Env{
		Loader:          reader.NewLoader(cfg.Loader),
		Layout:          table.LayoutFrom(cfg.Table),
		InvalidPathText: cfg.Dialog.InvalidPathText,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type panicLoader struct{}

func (panicLoader) Load(string) (*reader.Dataset, error) { panic("boom") }

type nilLoader struct{}

func (nilLoader) Load(string) (*reader.Dataset, error) { return nil, nil }

func TestBrowse(t *testing.T) {
	s, r := Browse(State{Path: "old.csv"}, "/data/new.csv")
	assert.Equal(t, "/data/new.csv", s.Path)
	assert.Equal(t, RenderPath, r.Kind)
	assert.Equal(t, "/data/new.csv", r.Path)

	s, r = Browse(s, "")
	assert.Equal(t, "", s.Path)
	assert.Equal(t, RenderPath, r.Kind)
	assert.Equal(t, "", r.Path)
}

func TestEdit(t *testing.T) {
	s, r := Edit(State{}, "typed.csv")
	assert.Equal(t, "typed.csv", s.Path)
	assert.Equal(t, RenderNone, r.Kind)
}

func TestLoadExampleScenario(t *testing.T) {
	env := newTestEnv(t)

	s, r := Load(State{Path: "notes.txt"}, env)
	assert.Equal(t, RenderWarning, r.Kind)
	assert.Equal(t, "Please select a csv file.", r.Warning)
	assert.False(t, s.Populated())

	s.Path = writeFile(t, "table.csv", "x,y\n1,2\n3,4")
	s, r = Load(s, env)
	require.Equal(t, RenderTable, r.Kind)
	assert.True(t, s.Populated())
	assert.Equal(t, []string{"0", "1"}, r.Table.Headings())
	assert.Equal(t, []table.Row{
		{Index: 0, Label: "0", Values: []string{"x", "y"}},
		{Index: 1, Label: "1", Values: []string{"1", "2"}},
		{Index: 2, Label: "2", Values: []string{"3", "4"}},
	}, r.Table.Rows)
}

func TestLoadNumbersRowsAfterBlankLines(t *testing.T) {
	env := newTestEnv(t)
	path := writeFile(t, "gaps.csv", "x,1\n\ny,2\n\n\nz,3\n")

	_, r := Load(State{Path: path}, env)
	require.Equal(t, RenderTable, r.Kind)
	assert.Equal(t, []table.Row{
		{Index: 0, Label: "0", Values: []string{"x", "1"}},
		{Index: 1, Label: "1", Values: []string{"y", "2"}},
		{Index: 2, Label: "2", Values: []string{"z", "3"}},
	}, r.Table.Rows)
}

func TestLoadFailureKeepsState(t *testing.T) {
	env := newTestEnv(t)

	good := writeFile(t, "good.csv", "a,b\n")
	s, r := Load(State{Path: good}, env)
	require.Equal(t, RenderTable, r.Kind)
	loaded := s.Dataset

	tests := []struct {
		name string
		path string
		want any
	}{
		{"wrong extension", "notes.txt", &validator.ValidationError{}},
		{"empty path", "", &validator.ValidationError{}},
		{"missing file", filepath.Join(t.TempDir(), "gone.csv"), &reader.IOError{}},
		{"not utf-8", writeFile(t, "bad.csv", "caf\xe9\n"), &reader.ParseError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, r := Load(State{Path: tt.path, Dataset: loaded}, env)
			assert.Equal(t, RenderWarning, r.Kind)
			assert.Same(t, loaded, next.Dataset)
			assert.Equal(t, tt.path, next.Path)
			assert.IsType(t, tt.want, r.Err)
			assert.NotEmpty(t, r.Warning)
		})
	}
}

func TestLoadIOErrorShowsErrorText(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "gone.csv")

	_, r := Load(State{Path: path}, env)
	require.Equal(t, RenderWarning, r.Kind)
	assert.Equal(t, r.Err.Error(), r.Warning)
	assert.Contains(t, r.Warning, "gone.csv")
}

func TestLoadRecoversPanic(t *testing.T) {
	env := newTestEnv(t)
	env.Loader = panicLoader{}

	s, r := Load(State{Path: "x.csv"}, env)
	assert.Equal(t, RenderWarning, r.Kind)
	assert.Contains(t, r.Warning, "boom")
	assert.False(t, s.Populated())
}

func TestLoadWithoutLoader(t *testing.T) {
	env := newTestEnv(t)
	env.Loader = nil

	_, r := Load(State{Path: "x.csv"}, env)
	assert.Equal(t, RenderWarning, r.Kind)
}

func TestLoadNilDatasetBecomesEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.Loader = nilLoader{}

	s, r := Load(State{Path: "x.csv"}, env)
	assert.Equal(t, RenderTable, r.Kind)
	assert.True(t, s.Populated())
	assert.True(t, r.Table.Empty())
}

func TestControllerReplacesDataset(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(newTestEnv(t), logger.New(&buf, zerolog.InfoLevel))
	assert.False(t, c.State().Populated())

	first := writeFile(t, "first.csv", "1,2,3\n4,5,6\n7,8,9\n")
	second := writeFile(t, "second.csv", "a,b\nc,d\n")

	r := c.Dispatch(Event{Command: CommandBrowse, Path: first})
	assert.Equal(t, RenderPath, r.Kind)

	r = c.Dispatch(Event{Command: CommandLoad})
	require.Equal(t, RenderTable, r.Kind)
	assert.Len(t, r.Table.Rows, 3)
	assert.Len(t, r.Table.Columns, 3)

	c.Dispatch(Event{Command: CommandEdit, Path: second})
	r = c.Dispatch(Event{Command: CommandLoad})
	require.Equal(t, RenderTable, r.Kind)
	require.Len(t, r.Table.Rows, 2)
	assert.Len(t, r.Table.Columns, 2)
	assert.Equal(t, []string{"a", "b"}, r.Table.Rows[0].Values)
	assert.Equal(t, []string{"c", "d"}, r.Table.Rows[1].Values)
	assert.Equal(t, 2, c.State().Dataset.Len())

	assert.Contains(t, buf.String(), "dataset loaded")
	assert.Contains(t, buf.String(), "path selected")
}

func TestControllerCancelledBrowseThenLoad(t *testing.T) {
	c := NewController(newTestEnv(t), logger.Nop())

	c.Dispatch(Event{Command: CommandEdit, Path: "typed.csv"})
	r := c.Dispatch(Event{Command: CommandBrowse, Path: ""})
	assert.Equal(t, RenderPath, r.Kind)
	assert.Equal(t, "", c.State().Path)

	r = c.Dispatch(Event{Command: CommandLoad})
	assert.Equal(t, RenderWarning, r.Kind)
	var verr *validator.ValidationError
	assert.True(t, errors.As(r.Err, &verr))
}

func TestControllerUnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(newTestEnv(t), logger.New(&buf, zerolog.InfoLevel))
	c.Dispatch(Event{Command: CommandEdit, Path: "kept.csv"})

	r := c.Dispatch(Event{Command: "sort"})
	assert.Equal(t, RenderNone, r.Kind)
	assert.Equal(t, "kept.csv", c.State().Path)
	assert.Contains(t, buf.String(), "unknown command")
}

func TestHandlerFor(t *testing.T) {
	for _, cmd := range []Command{CommandBrowse, CommandEdit, CommandLoad} {
		_, ok := HandlerFor(cmd)
		assert.True(t, ok, cmd)
	}
	_, ok := HandlerFor("filter")
	assert.False(t, ok)
}

func TestRenderKindString(t *testing.T) {
	assert.Equal(t, "none", RenderNone.String())
	assert.Equal(t, "path", RenderPath.String())
	assert.Equal(t, "table", RenderTable.String())
	assert.Equal(t, "warning", RenderWarning.String())
}
