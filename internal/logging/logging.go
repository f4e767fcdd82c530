// Package logging builds the logrus logger used across rpick. The terminal
// belongs to the UI, so log output only ever goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects the log destination and verbosity.
type Options struct {
	File  string
	Level string
}

// New returns a logger writing to opts.File. With no file configured it
// returns a logger that discards everything. The returned closer must be
// closed on exit.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	if opts.File == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := newLogger(f)
	logger.SetLevel(level)
	return logger, f, nil
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	logger := newLogger(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
