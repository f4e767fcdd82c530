package state

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/kk-code-lab/rpick/internal/logging"
	"github.com/kk-code-lab/rpick/internal/preview"
	"github.com/sirupsen/logrus"
)

// Lister enumerates a directory's immediate children.
type Lister interface {
	List(dirPath string) ([]FileEntry, error)
}

// Previewer renders an entry into coloured lines.
type Previewer interface {
	Preview(entry FileEntry) []preview.Line
}

// PreviewEnterMode selects what Enter does while previewing a directory.
type PreviewEnterMode int

const (
	// PreviewEnterPromote opens the previewed directory and keeps the
	// highlighted preview row selected.
	PreviewEnterPromote PreviewEnterMode = iota
	// PreviewEnterDescend opens the child highlighted in the preview.
	PreviewEnterDescend
)

// ParsePreviewEnterMode maps the config spelling to a PreviewEnterMode.
func ParsePreviewEnterMode(s string) (PreviewEnterMode, error) {
	switch s {
	case "", "promote":
		return PreviewEnterPromote, nil
	case "descend":
		return PreviewEnterDescend, nil
	default:
		return PreviewEnterPromote, fmt.Errorf("unknown preview enter mode %q", s)
	}
}

// StateReducer applies actions to an AppState and re-derives the filtered
// list and preview after each one.
type StateReducer struct {
	lister       Lister
	previewer    Previewer
	logger       logrus.FieldLogger
	enterMode    PreviewEnterMode
	canonicalize func(string) (string, error)
}

// ReducerOption customises a StateReducer.
type ReducerOption func(*StateReducer)

// WithLogger routes reducer logging to logger.
func WithLogger(logger logrus.FieldLogger) ReducerOption {
	return func(r *StateReducer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPreviewEnterMode sets the Enter behaviour in preview mode.
func WithPreviewEnterMode(mode PreviewEnterMode) ReducerOption {
	return func(r *StateReducer) {
		r.enterMode = mode
	}
}

func NewStateReducer(lister Lister, previewer Previewer, opts ...ReducerOption) *StateReducer {
	r := &StateReducer{
		lister:       lister,
		previewer:    previewer,
		logger:       logging.Discard(),
		enterMode:    PreviewEnterPromote,
		canonicalize: canonicalPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load lists dir and makes it the working directory of a fresh state. A
// listing failure leaves an empty listing and is recorded in LastError so the
// user can still go up. Only a path that cannot be resolved is returned.
func (r *StateReducer) Load(state *AppState, dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", dir, err)
	}
	entries, err := r.listDirectory(abs)
	state.commitDirectory(abs, entries)
	state.SelectedIndex = 0
	state.PreviewIndex = 0
	state.LastError = err
	r.Derive(state)
	if err == nil {
		r.logger.WithField("path", abs).Info("loaded working directory")
	}
	return nil
}

// Reduce applies action and then re-derives the view model. The returned
// error describes a recovered failure; state stays consistent either way.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	err := r.apply(state, action)
	r.Derive(state)
	return state, err
}

func (r *StateReducer) apply(state *AppState, action Action) error {
	switch a := action.(type) {

	// ===== FILTER =====

	case SearchStartAction:
		if state.Mode == ModeBrowsing {
			state.Mode = ModeSearching
		}

	case FilterCharAction:
		if state.Mode == ModeSearching {
			state.FilterPattern += string(a.Char)
		}

	case FilterBackspaceAction:
		if state.Mode == ModeSearching && state.FilterPattern != "" {
			_, size := utf8.DecodeLastRuneInString(state.FilterPattern)
			state.FilterPattern = state.FilterPattern[:len(state.FilterPattern)-size]
		}

	case FilterCancelAction:
		if state.Mode == ModeSearching {
			state.FilterPattern = ""
			state.Mode = ModeBrowsing
		}

	case FilterCommitAction:
		if state.Mode == ModeSearching {
			state.Mode = ModeBrowsing
		}

	// ===== PREVIEW =====

	case PreviewEnterAction:
		if state.Mode == ModeBrowsing {
			state.Mode = ModePreviewing
			state.PreviewIndex = 0
		}

	case PreviewExitAction:
		if state.Mode == ModePreviewing {
			state.Mode = ModeBrowsing
			state.SelectedIndex = 0
		}

	// ===== NAVIGATION =====

	case MoveDownAction:
		switch state.Mode {
		case ModeBrowsing:
			state.SelectedIndex = clampIndex(state.SelectedIndex+1, len(state.Filtered))
		case ModePreviewing:
			state.PreviewIndex = clampIndex(state.PreviewIndex+1, len(state.PreviewLines))
		}

	case MoveUpAction:
		switch state.Mode {
		case ModeBrowsing:
			state.SelectedIndex = clampIndex(state.SelectedIndex-1, len(state.Filtered))
		case ModePreviewing:
			state.PreviewIndex = clampIndex(state.PreviewIndex-1, len(state.PreviewLines))
		}

	case EnterDirectoryAction:
		switch state.Mode {
		case ModeBrowsing:
			return r.enterSelected(state)
		case ModePreviewing:
			if r.enterMode == PreviewEnterDescend {
				return r.descendFromPreview(state)
			}
			return r.promoteFromPreview(state)
		}

	case GoUpAction:
		if state.Mode != ModeSearching {
			return r.goUp(state)
		}

	// ===== APPLICATION =====

	case QuitAction:
		state.Quit = true
		r.logger.WithField("mode", state.Mode).Debug("quit without selection")

	case YankPathAction:
		if state.Mode != ModeSearching {
			return r.yank(state)
		}
	}

	return nil
}

// Derive recomputes Filtered and PreviewLines and pulls both indices back
// into range.
func (r *StateReducer) Derive(state *AppState) {
	filtered, applied, err := filterEntries(state.Entries, state.FilterPattern)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"pattern": state.FilterPattern,
			"error":   err,
		}).Debug("invalid filter pattern cleared")
	}
	state.FilterPattern = applied
	state.Filtered = filtered

	if state.SelectedIndex < 0 || state.SelectedIndex >= len(state.Filtered) {
		state.SelectedIndex = 0
	}

	entry := state.SelectedEntry()
	if entry == nil {
		state.PreviewLines = nil
		state.previewedPath = ""
		state.PreviewIndex = 0
		return
	}

	if entry.FullPath != state.previewedPath {
		state.PreviewIndex = 0
		state.previewedPath = entry.FullPath
	}
	state.PreviewLines = r.previewer.Preview(*entry)
	if state.PreviewIndex < 0 || state.PreviewIndex >= len(state.PreviewLines) {
		state.PreviewIndex = 0
	}
}

func clampIndex(idx, length int) int {
	if length == 0 || idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
