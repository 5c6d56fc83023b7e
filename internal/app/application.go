package app

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rdrive/internal/config"
	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	statepkg "github.com/kk-code-lab/rdrive/internal/state"
	inputui "github.com/kk-code-lab/rdrive/internal/ui/input"
	renderui "github.com/kk-code-lab/rdrive/internal/ui/render"
	"github.com/kk-code-lab/rdrive/internal/volume"
)

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	state     *statepkg.NavState
	reducer   *statepkg.StateReducer
	renderer  *renderui.Renderer
	input     *inputui.InputHandler
	actionCh  chan statepkg.Action
	closeOnce sync.Once
}

// NewApplication takes over the terminal and discovers volumes on the host.
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newApplication(ctx, screen, fsutil.OS{}, cfg.ListTimeout, fsutil.DefaultVolumeCandidates()), nil
}

// newApplication wires an initialised screen to a filesystem.
func newApplication(ctx context.Context, screen tcell.Screen, fsys fsutil.FileSystem, listTimeout time.Duration, candidates []rune) *Application {
	state := statepkg.NewNavState(volume.Discover(ctx, fsys, candidates))
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)

	return &Application{
		screen: screen,
		state:  state,
		reducer: statepkg.NewStateReducer(fsys,
			statepkg.WithListTimeout(listTimeout),
			statepkg.WithVolumeCandidates(candidates),
		),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
	}
}

// State exposes the current navigation state.
func (app *Application) State() *statepkg.NavState {
	return app.state
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.closeOnce.Do(func() {
		app.screen.Fini()
	})
	return nil
}
