package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"golang.org/x/text/unicode/norm"
)

// ErrNotDirectory is returned when a listing is requested for a non-directory.
var ErrNotDirectory = errors.New("not a directory")

// ListOptions controls which children a Lister reports.
type ListOptions struct {
	ShowHidden bool
	Ignore     []string // glob patterns matched against entry names
}

// Lister enumerates the immediate children of a directory.
type Lister struct {
	showHidden bool
	ignore     []glob.Glob
}

// NewLister compiles the ignore patterns in opts.
func NewLister(opts ListOptions) (*Lister, error) {
	globs := make([]glob.Glob, 0, len(opts.Ignore))
	for _, pattern := range opts.Ignore {
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return &Lister{showHidden: opts.ShowHidden, ignore: globs}, nil
}

// List returns the children of dirPath in the order the OS directory read
// yields them. It never recurses.
func (l *Lister) List(dirPath string) ([]Entry, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, ErrNotDirectory)
	}

	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		if !l.showHidden && IsHidden(rawName) {
			continue
		}
		if l.ignored(rawName) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// Vanished between ReadDir and Info.
			continue
		}

		fullPath := filepath.Join(dirPath, rawName)
		entries = append(entries, entryFromInfo(fullPath, norm.NFC.String(rawName), info))
	}
	return entries, nil
}

func (l *Lister) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
