package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rpick/internal/fs"
	"github.com/kk-code-lab/rpick/internal/logging"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
	inputui "github.com/kk-code-lab/rpick/internal/ui/input"
	renderui "github.com/kk-code-lab/rpick/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// ErrInputClosed is returned by Run when the terminal stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

// Config wires the application's collaborators.
type Config struct {
	StartDir      string // defaults to the current working directory
	BrowsePercent int
	PreviewEnter  statepkg.PreviewEnterMode
	Lister        statepkg.Lister
	Previewer     statepkg.Previewer
	Logger        logrus.FieldLogger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	logger     logrus.FieldLogger
	pollEvent  func() tcell.Event
	shouldQuit bool
}

// NewApplication opens the terminal and loads the start directory.
func NewApplication(cfg Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	return NewApplicationWithScreen(screen, cfg)
}

// NewApplicationWithScreen is NewApplication on a caller-supplied screen.
// An explicit start directory must exist. If it cannot be listed the session
// still opens on an empty listing with the error shown.
func NewApplicationWithScreen(screen tcell.Screen, cfg Config) (*Application, error) {
	if cfg.Lister == nil || cfg.Previewer == nil {
		return nil, errors.New("lister and previewer are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	startDir := cfg.StartDir
	if startDir == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		startDir = cwd
	} else if err := checkStartDir(startDir); err != nil {
		return nil, err
	}

	reducer := statepkg.NewStateReducer(cfg.Lister, cfg.Previewer,
		statepkg.WithLogger(logger),
		statepkg.WithPreviewEnterMode(cfg.PreviewEnter),
	)
	state := &statepkg.AppState{}
	if err := reducer.Load(state, startDir); err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialise terminal: %w", err)
	}

	renderer := renderui.NewRenderer(screen)
	renderer.SetBrowsePercent(cfg.BrowsePercent)

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:    screen,
		state:     state,
		reducer:   reducer,
		renderer:  renderer,
		input:     inputHandler,
		actionCh:  actionCh,
		logger:    logger,
		pollEvent: screen.PollEvent,
	}, nil
}

// State exposes the live state, mainly for tests.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// ClipboardPayload returns the yanked path once the session has ended.
func (app *Application) ClipboardPayload() (string, bool) {
	return app.state.ClipboardPayload, app.state.HasPayload()
}

func checkStartDir(dir string) error {
	entry, err := fsutil.NewEntry(dir)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !entry.IsDir {
		return fmt.Errorf("cannot open %s: %w", dir, fsutil.ErrNotDirectory)
	}
	return nil
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
