package state

import (
	"reflect"
	"testing"
)

// ===== FILTER TESTS =====

func TestFilterAnchoredPattern(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "a.txt", "bdir/", "abc.rs")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, SearchStartAction{})
	typeFilter(t, reducer, state, "^a")

	want := []string{"a.txt", "abc.rs"}
	if got := filteredNames(state); !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered = %v, want %v", got, want)
	}
	if state.SelectedIndex != 0 || state.SelectedEntry().Name != "a.txt" {
		t.Fatalf("expected a.txt selected at 0, got %d", state.SelectedIndex)
	}
}

func TestFilterIsOrderPreservingSubsequence(t *testing.T) {
	names := []string{"zeta.go", "alpha.go", "readme.md", "beta.go", "Makefile"}
	fs := newFakeFS()
	fs.addDir("/work", names...)
	reducer := newTestReducer(t, fs, nil)

	patterns := []string{"", `\.go$`, "a", "^[A-Z]", "nomatch", "e.*a"}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			state := loadState(t, reducer, "/work")
			state.FilterPattern = pattern
			reducer.Derive(state)

			if pattern == "" && len(state.Filtered) != len(names) {
				t.Fatalf("empty pattern must match everything, got %v", filteredNames(state))
			}

			next := 0
			for _, entry := range state.Filtered {
				for next < len(state.Entries) && state.Entries[next].Name != entry.Name {
					next++
				}
				if next == len(state.Entries) {
					t.Fatalf("filtered %v is not an ordered subsequence", filteredNames(state))
				}
				next++
			}
			assertSelectionInBounds(t, state)
		})
	}
}

func TestInvalidPatternIsClearedToMatchAll(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "a", "b", "c")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, SearchStartAction{}, FilterCharAction{Char: '['})

	if state.FilterPattern != "" {
		t.Fatalf("invalid pattern should be cleared, got %q", state.FilterPattern)
	}
	if len(state.Filtered) != 3 {
		t.Fatalf("expected match-all after invalid pattern, got %v", filteredNames(state))
	}
	if state.Mode != ModeSearching {
		t.Fatalf("mode should stay searching, got %v", state.Mode)
	}
}

func TestFilterBackspaceRemovesLastRune(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "żółw.txt", "zebra")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, SearchStartAction{})
	typeFilter(t, reducer, state, "żó")
	dispatch(t, reducer, state, FilterBackspaceAction{})

	if state.FilterPattern != "ż" {
		t.Fatalf("expected pattern ż, got %q", state.FilterPattern)
	}
	dispatch(t, reducer, state, FilterBackspaceAction{}, FilterBackspaceAction{})
	if state.FilterPattern != "" {
		t.Fatalf("backspace on empty pattern should be a no-op, got %q", state.FilterPattern)
	}
}

func TestFilterCommitKeepsPattern(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "main.go", "notes.md")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, SearchStartAction{})
	typeFilter(t, reducer, state, "md")
	dispatch(t, reducer, state, FilterCommitAction{})

	if state.Mode != ModeBrowsing {
		t.Fatalf("expected browsing after commit, got %v", state.Mode)
	}
	if state.FilterPattern != "md" || !reflect.DeepEqual(filteredNames(state), []string{"notes.md"}) {
		t.Fatalf("commit should keep filter, got %q %v", state.FilterPattern, filteredNames(state))
	}
}

func TestFilterCancelClearsPattern(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "main.go", "notes.md")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, SearchStartAction{})
	typeFilter(t, reducer, state, "md")
	dispatch(t, reducer, state, FilterCancelAction{})

	if state.Mode != ModeBrowsing || state.FilterPattern != "" || len(state.Filtered) != 2 {
		t.Fatalf("cancel should clear filter, got mode=%v pattern=%q filtered=%v",
			state.Mode, state.FilterPattern, filteredNames(state))
	}
}

func TestSelectionResetsWhenFilterShrinksList(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "a1", "a2", "b1", "b2")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, MoveDownAction{}, MoveDownAction{}, MoveDownAction{})
	if state.SelectedIndex != 3 {
		t.Fatalf("expected selection 3, got %d", state.SelectedIndex)
	}

	dispatch(t, reducer, state, SearchStartAction{})
	typeFilter(t, reducer, state, "a")
	if state.SelectedIndex != 0 {
		t.Fatalf("out-of-range selection must reset to 0, got %d", state.SelectedIndex)
	}

	typeFilter(t, reducer, state, "zzz")
	if len(state.Filtered) != 0 || state.SelectedIndex != 0 || state.SelectedEntry() != nil {
		t.Fatalf("empty filter result must select nothing at 0")
	}
	if state.PreviewLines != nil {
		t.Fatalf("preview must be empty without a selection")
	}
}

func TestSearchingTreatsCommandKeysAsCharacters(t *testing.T) {
	fs := newFakeFS()
	fs.addDir("/work", "quay", "yak")
	reducer := newTestReducer(t, fs, nil)
	state := loadState(t, reducer, "/work")

	dispatch(t, reducer, state, SearchStartAction{}, SearchStartAction{})
	typeFilter(t, reducer, state, "qy")

	if state.Quit || state.FilterPattern != "qy" {
		t.Fatalf("expected pattern qy without quitting, got %q quit=%v", state.FilterPattern, state.Quit)
	}
}
