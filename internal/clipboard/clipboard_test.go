package clipboard

import (
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	commands [][]string
	inputs   []string
	written  []string
	cmdErr   error
	writeErr error
}

func newTestWriter(env map[string]string, found map[string]string, sink *fakeSink) *Writer {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &Writer{
		getenv: func(key string) string { return env[key] },
		lookPath: func(name string) (string, error) {
			if path, ok := found[name]; ok {
				return path, nil
			}
			return "", errors.New("not found")
		},
		runCommand: func(args []string, input string) error {
			sink.commands = append(sink.commands, args)
			sink.inputs = append(sink.inputs, input)
			return sink.cmdErr
		},
		writeAll: func(text string) error {
			sink.written = append(sink.written, text)
			return sink.writeErr
		},
		logger: logger,
	}
}

func TestCopyUsesWlCopyUnderWayland(t *testing.T) {
	sink := &fakeSink{}
	w := newTestWriter(
		map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
		map[string]string{"wl-copy": "/usr/bin/wl-copy"},
		sink,
	)

	require.NoError(t, w.Copy("/home/u/file.txt"))
	assert.Equal(t, [][]string{{"/usr/bin/wl-copy"}}, sink.commands)
	assert.Equal(t, []string{"/home/u/file.txt"}, sink.inputs)
	assert.Empty(t, sink.written)
}

func TestCopyFallsBackWithoutWayland(t *testing.T) {
	sink := &fakeSink{}
	w := newTestWriter(nil, map[string]string{"wl-copy": "/usr/bin/wl-copy"}, sink)

	require.NoError(t, w.Copy("/tmp/x"))
	assert.Empty(t, sink.commands)
	assert.Equal(t, []string{"/tmp/x"}, sink.written)
}

func TestCopyFallsBackWhenWlCopyMissing(t *testing.T) {
	sink := &fakeSink{}
	w := newTestWriter(map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, nil, sink)

	require.NoError(t, w.Copy("/tmp/x"))
	assert.Empty(t, sink.commands)
	assert.Equal(t, []string{"/tmp/x"}, sink.written)
}

func TestCopyReportsCommandFailure(t *testing.T) {
	sink := &fakeSink{cmdErr: errors.New("exit status 1")}
	w := newTestWriter(
		map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
		map[string]string{"wl-copy": "/usr/bin/wl-copy"},
		sink,
	)

	err := w.Copy("/tmp/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wl-copy")
	assert.ErrorIs(t, err, sink.cmdErr)
}

func TestCopyReportsSystemClipboardFailure(t *testing.T) {
	sink := &fakeSink{writeErr: errors.New("no clipboard utilities")}
	w := newTestWriter(nil, nil, sink)

	err := w.Copy("/tmp/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, sink.writeErr)
}

func TestDetectCommandIgnoresBlankWaylandDisplay(t *testing.T) {
	getenv := func(string) string { return "  " }
	lookPath := func(string) (string, error) { return "/usr/bin/wl-copy", nil }

	_, ok := detectCommand(getenv, lookPath)
	assert.False(t, ok)
}

func TestRunCommandReturnsWhileChildLingers(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	start := time.Now()
	require.NoError(t, runCommand([]string{sh, "-c", "cat >/dev/null; sleep 3 &"}, "/tmp/x"))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunCommandReportsExitStatus(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	err = runCommand([]string{sh, "-c", "exit 3"}, "")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}
