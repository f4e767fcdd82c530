package state

import (
	fsutil "github.com/kk-code-lab/rpick/internal/fs"
	"github.com/kk-code-lab/rpick/internal/preview"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode is the browser's interaction mode.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeSearching
	ModePreviewing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeSearching:
		return "searching"
	case ModePreviewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem. Committed together.
	WorkingDir string
	Entries    []FileEntry

	// Filtering
	FilterPattern string

	// Selection
	Mode          Mode
	SelectedIndex int // index into Filtered
	PreviewIndex  int // index into PreviewLines

	// Derived every pass, never edited directly
	Filtered      []FileEntry
	PreviewLines  []preview.Line
	previewedPath string

	// Session outcome
	Quit             bool
	ClipboardPayload string

	// Error state
	LastError error
}

// ===== HELPER METHODS =====

// SelectedEntry returns the highlighted entry of the browse list, or nil
// when the filtered list is empty.
func (s *AppState) SelectedEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Filtered) {
		return nil
	}
	return &s.Filtered[s.SelectedIndex]
}

// HasPayload reports whether the session ended with a yanked path.
func (s *AppState) HasPayload() bool {
	return s.ClipboardPayload != ""
}

// DisplayPattern is the filter shown in titles; ".*" stands in for empty.
func (s *AppState) DisplayPattern() string {
	if s.FilterPattern == "" {
		return ".*"
	}
	return s.FilterPattern
}

func (s *AppState) commitDirectory(path string, entries []FileEntry) {
	s.WorkingDir = path
	s.Entries = entries
}
