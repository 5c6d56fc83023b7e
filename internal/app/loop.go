package app

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rdrive/internal/logging"
	statepkg "github.com/kk-code-lab/rdrive/internal/state"
	"github.com/kk-code-lab/rdrive/internal/ui/view"
)

// Run processes input until the user quits or ctx is cancelled. The terminal
// is restored if anything panics along the way.
func (app *Application) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			_ = app.Close()
			panic(r)
		}
	}()

	// PollEvent cannot watch ctx, so cancellation arrives as an interrupt.
	stop := context.AfterFunc(ctx, func() {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	app.render()
	for !app.state.Quit {
		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen finalised underneath us.
			return
		}
		if !app.handleEvent(ctx, ev) {
			continue
		}
		app.processActions(ctx)
		if !app.state.Quit {
			app.render()
		}
	}
	logging.Info("quit", logging.String("path", app.state.CurrentPath))
}

func (app *Application) render() {
	app.renderer.Render(view.Build(app.state))
}

// handleEvent feeds an event to the input handler and reports whether a
// redraw may be needed.
func (app *Application) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		if ctx.Err() != nil {
			app.actionCh <- statepkg.QuitAction{}
		}
		return true
	default:
		return false
	}
}

// processActions drains queued actions through the reducer.
func (app *Application) processActions(ctx context.Context) {
	for {
		select {
		case action := <-app.actionCh:
			app.dispatch(ctx, action)
		default:
			return
		}
	}
}

func (app *Application) dispatch(ctx context.Context, action statepkg.Action) {
	if _, ok := action.(statepkg.ResizeAction); ok {
		app.screen.Sync()
	}

	_, err := app.reducer.Reduce(ctx, app.state, action)
	switch {
	case err == nil:
	case errors.Is(err, statepkg.ErrInvalidTransition):
		logging.Debug("action ignored", logging.Err(err))
	case statepkg.IsListingFailure(err):
		// Already logged by the reducer and shown in the status line.
	default:
		logging.Error("action failed", logging.Err(err))
	}
}
