package state

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// listDirectory stages a listing; nothing in state changes on failure.
func (r *StateReducer) listDirectory(path string) ([]FileEntry, error) {
	entries, err := r.lister.List(path)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("directory listing failed")
		return nil, err
	}
	return entries, nil
}

func (r *StateReducer) enterSelected(state *AppState) error {
	entry := state.SelectedEntry()
	if entry == nil || !entry.IsDir {
		return nil
	}

	entries, err := r.listDirectory(entry.FullPath)
	if err != nil {
		return err
	}

	state.commitDirectory(entry.FullPath, entries)
	state.FilterPattern = ""
	state.SelectedIndex = 0
	r.logger.WithField("path", state.WorkingDir).Debug("entered directory")
	return nil
}

// promoteFromPreview opens the previewed directory, keeping the highlighted
// preview row as the new selection.
func (r *StateReducer) promoteFromPreview(state *AppState) error {
	entry := state.SelectedEntry()
	if entry == nil || !entry.IsDir {
		return nil
	}

	entries, err := r.listDirectory(entry.FullPath)
	if err != nil {
		return err
	}

	row := state.PreviewIndex
	state.commitDirectory(entry.FullPath, entries)
	state.FilterPattern = ""
	state.Mode = ModeBrowsing
	state.SelectedIndex = row
	state.PreviewIndex = 0
	r.logger.WithFields(logrus.Fields{
		"path": state.WorkingDir,
		"row":  row,
	}).Debug("opened previewed directory")
	return nil
}

// descendFromPreview opens the child highlighted in the directory preview.
// Both listings must succeed before anything is committed.
func (r *StateReducer) descendFromPreview(state *AppState) error {
	entry := state.SelectedEntry()
	if entry == nil || !entry.IsDir {
		return nil
	}

	children, err := r.listDirectory(entry.FullPath)
	if err != nil {
		return err
	}
	if state.PreviewIndex < 0 || state.PreviewIndex >= len(children) {
		return nil
	}

	target := children[state.PreviewIndex]
	entries, err := r.listDirectory(target.FullPath)
	if err != nil {
		return err
	}

	state.commitDirectory(target.FullPath, entries)
	state.FilterPattern = ""
	state.Mode = ModeBrowsing
	state.SelectedIndex = 0
	state.PreviewIndex = 0
	r.logger.WithField("path", state.WorkingDir).Debug("descended from preview")
	return nil
}

// goUp moves to the parent directory and reselects the directory just left
// when it passes the current filter.
func (r *StateReducer) goUp(state *AppState) error {
	parent := filepath.Dir(state.WorkingDir)
	if parent == state.WorkingDir {
		return nil
	}

	entries, err := r.listDirectory(parent)
	if err != nil {
		return err
	}

	previous := state.WorkingDir
	state.commitDirectory(parent, entries)

	state.SelectedIndex = 0
	if filtered, _, err := filterEntries(entries, state.FilterPattern); err == nil {
		if idx := indexOfPath(filtered, previous); idx >= 0 {
			state.SelectedIndex = idx
		}
	}
	r.logger.WithFields(logrus.Fields{
		"path": parent,
		"from": previous,
	}).Debug("went up")
	return nil
}

func (r *StateReducer) yank(state *AppState) error {
	entry := state.SelectedEntry()
	if entry == nil {
		return nil
	}

	path, err := r.canonicalize(entry.FullPath)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", entry.FullPath, err)
	}
	state.ClipboardPayload = path
	state.Quit = true
	r.logger.WithField("path", path).Info("yanked path")
	return nil
}

// canonicalPath returns the absolute, symlink-free form of path. Dangling
// links resolve to their absolute link path.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
