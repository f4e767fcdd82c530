package state

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/rpick/internal/preview"
)

// fakeFS is an in-memory directory tree keyed by absolute path.
type fakeFS struct {
	dirs  map[string][]FileEntry
	calls []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{dirs: map[string][]FileEntry{}}
}

// addDir registers dir with the given children. Names ending in "/" are
// directories.
func (f *fakeFS) addDir(dir string, names ...string) {
	entries := make([]FileEntry, 0, len(names))
	for _, name := range names {
		isDir := false
		if n := len(name); n > 0 && name[n-1] == '/' {
			name = name[:n-1]
			isDir = true
		}
		entries = append(entries, FileEntry{Name: name, FullPath: filepath.Join(dir, name), IsDir: isDir})
	}
	f.dirs[dir] = entries
}

func (f *fakeFS) List(dir string) ([]FileEntry, error) {
	f.calls = append(f.calls, dir)
	entries, ok := f.dirs[dir]
	if !ok {
		return nil, errors.New("cannot read directory " + dir)
	}
	return entries, nil
}

// fakePreviewer lists directories through fakeFS and returns canned lines
// for files.
type fakePreviewer struct {
	fs    *fakeFS
	files map[string][]string
}

func (p *fakePreviewer) Preview(entry FileEntry) []preview.Line {
	var texts []string
	if entry.IsDir {
		for _, child := range p.fs.dirs[entry.FullPath] {
			texts = append(texts, child.Name)
		}
	} else {
		texts = p.files[entry.FullPath]
	}
	lines := make([]preview.Line, 0, len(texts))
	for _, text := range texts {
		lines = append(lines, preview.Line{{Text: text, Color: preview.PlainColor}})
	}
	return lines
}

func newTestReducer(t *testing.T, fs *fakeFS, files map[string][]string, opts ...ReducerOption) *StateReducer {
	t.Helper()
	return NewStateReducer(fs, &fakePreviewer{fs: fs, files: files}, opts...)
}

func loadState(t *testing.T, reducer *StateReducer, dir string) *AppState {
	t.Helper()
	state := &AppState{}
	if err := reducer.Load(state, dir); err != nil {
		t.Fatalf("Load(%s): %v", dir, err)
	}
	return state
}

func dispatch(t *testing.T, reducer *StateReducer, state *AppState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("Reduce(%T): %v", action, err)
		}
	}
}

func filteredNames(state *AppState) []string {
	names := make([]string, len(state.Filtered))
	for i, e := range state.Filtered {
		names[i] = e.Name
	}
	return names
}

func typeFilter(t *testing.T, reducer *StateReducer, state *AppState, pattern string) {
	t.Helper()
	for _, ch := range pattern {
		dispatch(t, reducer, state, FilterCharAction{Char: ch})
	}
}

func assertSelectionInBounds(t *testing.T, state *AppState) {
	t.Helper()
	if len(state.Filtered) == 0 {
		if state.SelectedIndex != 0 {
			t.Fatalf("empty list must select 0, got %d", state.SelectedIndex)
		}
		return
	}
	if state.SelectedIndex < 0 || state.SelectedIndex >= len(state.Filtered) {
		t.Fatalf("selection %d out of bounds for %d entries", state.SelectedIndex, len(state.Filtered))
	}
}
