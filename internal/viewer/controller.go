package viewer

import (
	"github.com/rs/zerolog"
)

// Controller owns the window state and runs commands against it.
// It is only touched from the UI thread.
type Controller struct {
	state State
	env   Env
	log   zerolog.Logger
}

// NewController creates a controller in the empty state
func NewController(env Env, log zerolog.Logger) *Controller {
	return &Controller{env: env, log: log}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Dispatch runs the handler for ev and keeps the state it returns
func (c *Controller) Dispatch(ev Event) Render {
	handler, ok := HandlerFor(ev.Command)
	if !ok {
		c.log.Warn().Str("command", string(ev.Command)).Msg("unknown command")
		return Render{Kind: RenderNone}
	}

	next, render := handler(c.state, ev, c.env)
	c.state = next

	switch render.Kind {
	case RenderPath:
		c.log.Info().Str("path", render.Path).Msg("path selected")
	case RenderTable:
		c.log.Info().
			Str("path", next.Path).
			Int("rows", len(render.Table.Rows)).
			Int("columns", len(render.Table.Columns)).
			Msg("dataset loaded")
	case RenderWarning:
		c.log.Warn().Err(render.Err).Str("path", next.Path).Msg("load rejected")
	}

	return render
}
