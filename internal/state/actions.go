package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveDownAction struct{}
type MoveUpAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== FILTER ACTIONS =====

type SearchStartAction struct{}
type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterCancelAction struct{} // Escape: clear and leave
type FilterCommitAction struct{} // Enter: keep and leave

// ===== PREVIEW ACTIONS =====

type PreviewEnterAction struct{}
type PreviewExitAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}     // q / Ctrl-C - no payload
type YankPathAction struct{} // y - copy selection and quit
