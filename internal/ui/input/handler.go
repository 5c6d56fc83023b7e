package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rdrive/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if action, ok := keyAction(ev); ok {
		ih.actionChan <- action
		if _, quit := action.(statepkg.QuitAction); quit {
			return false
		}
	}
	return true
}

// keyAction maps a key press to an action. Unmapped keys report false.
func keyAction(ev *tcell.EventKey) (statepkg.Action, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}, true
	case tcell.KeyUp:
		return statepkg.MoveSelectionAction{Delta: -1}, true
	case tcell.KeyDown:
		return statepkg.MoveSelectionAction{Delta: 1}, true
	case tcell.KeyPgUp:
		return statepkg.MovePageAction{Pages: -1}, true
	case tcell.KeyPgDn:
		return statepkg.MovePageAction{Pages: 1}, true
	case tcell.KeyHome:
		return statepkg.SelectFirstAction{}, true
	case tcell.KeyEnd:
		return statepkg.SelectLastAction{}, true
	case tcell.KeyEnter, tcell.KeyRight:
		return statepkg.EnterSelectionAction{}, true
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.GoUpAction{}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return statepkg.QuitAction{}, true
		case 'r':
			return statepkg.RefreshAction{}, true
		case 'R':
			return statepkg.RescanVolumesAction{}, true
		}
	}
	return nil, false
}
