package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	default:
		return true
	}
}

func (ih *InputHandler) mode() statepkg.Mode {
	if ih.state == nil {
		return statepkg.ModeBrowsing
	}
	return ih.state.Mode
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.mode() == statepkg.ModeSearching {
		ih.processSearchKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.GoUpAction{}
		return true
	case tcell.KeyRune:
		return ih.processCommandRune(ev.Rune())
	}
	return true
}

// processSearchKey edits the filter; every printable key is literal text.
func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.FilterCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.FilterCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.FilterBackspaceAction{}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			ih.actionChan <- statepkg.FilterCharAction{Char: r}
		}
	}
}

func (ih *InputHandler) processCommandRune(r rune) bool {
	previewing := ih.mode() == statepkg.ModePreviewing

	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'y':
		ih.actionChan <- statepkg.YankPathAction{}
	case 'j':
		ih.actionChan <- statepkg.MoveDownAction{}
	case 'k':
		ih.actionChan <- statepkg.MoveUpAction{}
	case 'i':
		if !previewing {
			ih.actionChan <- statepkg.SearchStartAction{}
		}
	case 'l':
		if !previewing {
			ih.actionChan <- statepkg.PreviewEnterAction{}
		}
	case 'h':
		if previewing {
			ih.actionChan <- statepkg.PreviewExitAction{}
		}
	}
	return true
}
