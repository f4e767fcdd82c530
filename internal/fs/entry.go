package fs

import (
	"os"
	"path/filepath"
	"time"
)

// Entry is one child of a listed directory.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsRegular reports whether the entry, after following symlinks, is a plain file.
// Dangling symlinks are not regular.
func (e Entry) IsRegular() bool {
	return !e.IsDir && e.Mode.IsRegular()
}

// IsHidden reports whether name denotes a hidden entry on Unix-like systems.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// NewEntry stats path and builds an Entry for it. Symlinks are followed only to
// decide whether the entry is a directory or a regular file.
func NewEntry(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	return entryFromInfo(path, filepath.Base(path), info), nil
}

func entryFromInfo(fullPath, name string, info os.FileInfo) Entry {
	mode := info.Mode()
	isSymlink := mode&os.ModeSymlink != 0
	isDir := info.IsDir()

	if isSymlink {
		if target, err := os.Stat(fullPath); err == nil {
			isDir = target.IsDir()
			mode = target.Mode()
		}
	}

	return Entry{
		Name:      name,
		FullPath:  fullPath,
		IsDir:     isDir,
		IsSymlink: isSymlink,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Mode:      mode,
	}
}
