// Package clipboard delivers text to the system clipboard.
package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/kk-code-lab/rpick/internal/logging"
	"github.com/sirupsen/logrus"
)

// Writer copies text to the clipboard. Under Wayland it pipes through
// wl-copy; everywhere else it uses the platform clipboard.
type Writer struct {
	getenv     func(string) string
	lookPath   func(string) (string, error)
	runCommand func(args []string, input string) error
	writeAll   func(string) error
	logger     logrus.FieldLogger
}

// New returns a Writer bound to the real environment.
func New(logger logrus.FieldLogger) *Writer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Writer{
		getenv:     os.Getenv,
		lookPath:   exec.LookPath,
		runCommand: runCommand,
		writeAll:   clipboard.WriteAll,
		logger:     logger,
	}
}

// Copy places text on the clipboard.
func (w *Writer) Copy(text string) error {
	if args, ok := detectCommand(w.getenv, w.lookPath); ok {
		w.logger.WithField("command", args[0]).Debug("copying via clipboard command")
		if err := w.runCommand(args, text); err != nil {
			return fmt.Errorf("clipboard command %s failed: %w", args[0], err)
		}
		return nil
	}

	w.logger.Debug("copying via system clipboard")
	if err := w.writeAll(text); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	return nil
}

func detectCommand(getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	if strings.TrimSpace(getenv("WAYLAND_DISPLAY")) == "" {
		return nil, false
	}
	if path, err := lookPath("wl-copy"); err == nil && path != "" {
		return []string{path}, true
	}
	return nil, false
}

// runCommand hands the process's own output files to the child. wl-copy keeps
// serving the selection in the background and must not hold a pipe open.
func runCommand(args []string, input string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
