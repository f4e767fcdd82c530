package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

// Run draws the UI and processes events until the session ends. The screen
// is finalised before Run returns.
func (app *Application) Run() error {
	defer app.screen.Fini()

	app.renderer.Render(app.state)

	for !app.shouldQuit {
		ev := app.pollEvent()
		if ev == nil {
			app.logger.Error("terminal event stream closed")
			return ErrInputClosed
		}
		if app.handleEvent(ev) {
			app.renderer.Render(app.state)
		}
	}
	return nil
}

// handleEvent applies one terminal event and reports whether a redraw is
// needed.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		app.state.LastError = nil
		keepGoing := app.input.ProcessEvent(ev)
		app.processActions()
		app.shouldQuit = !keepGoing || app.state.Quit
		return true
	case *tcell.EventResize:
		app.screen.Sync()
		return true
	default:
		return false
	}
}

func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.logger.WithError(err).WithField("mode", app.state.Mode).Warn("action failed")
	}
}
