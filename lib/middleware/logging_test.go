package middleware

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readLogLines returns the non-empty lines of the log file at path.
func readLogLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("Failed to read log file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// newLogging builds an activated logging middleware over the given backend,
// logging into a per-test temp file.
func newLogging(t *testing.T, backend *fakeStorage, opts *LoggingOptions) (*LoggingMiddleware, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "tinydb.log")
	if opts == nil {
		opts = &LoggingOptions{LogPath: logPath}
	} else {
		opts.LogPath = logPath
	}
	factory, _ := factoryFor(backend)
	l := NewLogging(factory, opts)
	activate(t, l.Factory())
	return l, logPath
}

func TestLoggingOneLinePerOperation(t *testing.T) {
	backend := &fakeStorage{doc: doc("persisted")}
	l, logPath := newLogging(t, backend, nil)

	if _, err := l.Read(); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if err := l.Write(doc("v")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := l.Read(); err != nil {
		t.Fatalf("Second read failed: %v", err)
	}

	lines := readLogLines(t, logPath)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 log lines, got %d: %v", len(lines), lines)
	}

	expected := []string{"Read operation", "Write operation", "Read operation"}
	for i, label := range expected {
		if !strings.HasPrefix(lines[i], label+" performed at ") {
			t.Errorf("Line %d: expected label %q, got %q", i, label, lines[i])
		}
	}
}

func TestLoggingLogBeforeForward(t *testing.T) {
	// The entry is appended before delegation, so a failing backend call
	// still leaves exactly one line.
	backend := &fakeStorage{readErr: errors.New("backend broken")}
	l, logPath := newLogging(t, backend, nil)

	if _, err := l.Read(); err == nil {
		t.Fatalf("Expected the backend read error to surface")
	}

	lines := readLogLines(t, logPath)
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one log line, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Read operation performed at ") {
		t.Errorf("Expected a read entry, got %q", lines[0])
	}
}

func TestLoggingCloseNotLoggedByDefault(t *testing.T) {
	backend := &fakeStorage{}
	l, logPath := newLogging(t, backend, nil)

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if backend.closeCalls != 1 {
		t.Errorf("Expected the close to be forwarded, got %d", backend.closeCalls)
	}

	if lines := readLogLines(t, logPath); len(lines) != 0 {
		t.Errorf("Expected no log entry for close, got %v", lines)
	}
}

func TestLoggingCloseOptIn(t *testing.T) {
	backend := &fakeStorage{}
	l, logPath := newLogging(t, backend, &LoggingOptions{LogClose: true})

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := readLogLines(t, logPath)
	if len(lines) != 1 {
		t.Fatalf("Expected one log entry for close, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Close operation performed at ") {
		t.Errorf("Expected a close entry, got %q", lines[0])
	}
}

func TestLoggingFailurePropagates(t *testing.T) {
	// Pointing the log at a directory makes every append fail. The
	// operation must fail without touching the backend.
	backend := &fakeStorage{doc: doc("persisted")}
	factory, _ := factoryFor(backend)
	l := NewLogging(factory, &LoggingOptions{LogPath: t.TempDir()})
	activate(t, l.Factory())

	if _, err := l.Read(); err == nil {
		t.Fatalf("Expected the log failure to surface")
	}
	if backend.readCalls != 0 {
		t.Errorf("Expected the backend to stay untouched, got %d reads", backend.readCalls)
	}
}

func TestLoggingDefaultPath(t *testing.T) {
	factory, _ := factoryFor(&fakeStorage{})

	l := NewLogging(factory, nil)
	if l.logPath != DefaultLogPath {
		t.Errorf("Expected default log path %q, got %q", DefaultLogPath, l.logPath)
	}

	// An empty configured path also falls back to the default
	l = NewLogging(factory, &LoggingOptions{})
	if l.logPath != DefaultLogPath {
		t.Errorf("Expected default log path %q for empty option, got %q", DefaultLogPath, l.logPath)
	}
}
