package preview

import (
	"github.com/kk-code-lab/rpick/internal/fs"
	"github.com/kk-code-lab/rpick/internal/logging"
	"github.com/sirupsen/logrus"
)

// DefaultMaxBytes caps how much of a file is read for a preview.
const DefaultMaxBytes int64 = 256 * 1024

// DirectoryLister lists the children of a directory.
type DirectoryLister interface {
	List(path string) ([]fs.Entry, error)
}

// Options configures a Previewer.
type Options struct {
	Theme    string
	TabWidth int
	MaxBytes int64
	Logger   logrus.FieldLogger
}

// Previewer builds preview lines for files and directories.
type Previewer struct {
	lister      DirectoryLister
	highlighter *Highlighter
	maxBytes    int64
	logger      logrus.FieldLogger
}

// NewPreviewer returns a Previewer that lists directories with lister.
func NewPreviewer(lister DirectoryLister, opts Options) *Previewer {
	theme := opts.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Previewer{
		lister:      lister,
		highlighter: NewHighlighter(theme, opts.TabWidth),
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

// Preview returns the coloured lines for entry. Directories yield one line per
// child; regular files yield their highlighted contents. Anything unreadable,
// binary or of another kind yields no lines.
func (p *Previewer) Preview(entry fs.Entry) []Line {
	switch {
	case entry.IsDir:
		return p.previewDirectory(entry.FullPath)
	case entry.IsRegular():
		return p.previewFile(entry.FullPath)
	default:
		return nil
	}
}

func (p *Previewer) previewDirectory(path string) []Line {
	children, err := p.lister.List(path)
	if err != nil {
		p.logger.WithError(err).WithField("path", path).Debug("directory preview unavailable")
		return nil
	}

	lines := make([]Line, len(children))
	for i, child := range children {
		color := FileColor
		if child.IsDir {
			color = DirectoryColor
		}
		lines[i] = Line{{Text: child.Name, Color: color}}
	}
	return lines
}

func (p *Previewer) previewFile(path string) []Line {
	text, ok, err := readText(path, p.maxBytes)
	if err != nil {
		p.logger.WithError(err).WithField("path", path).Debug("file preview unavailable")
		return nil
	}
	if !ok {
		p.logger.WithField("path", path).Debug("binary file, preview skipped")
		return nil
	}
	return p.highlighter.Highlight(path, text)
}
