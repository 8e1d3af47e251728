package middleware

import (
	"fmt"
	"os"
	"time"

	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// DefaultLogPath is the log destination used when none is configured.
const DefaultLogPath = "tinydb.log"

// timestampLayout mirrors a plain "YYYY-MM-DD HH:MM:SS.ffffff" timestamp.
const timestampLayout = "2006-01-02 15:04:05.000000"

// LoggingOptions configures the LoggingMiddleware behavior during creation
type LoggingOptions struct {
	// LogPath is the log file to append to. Empty selects DefaultLogPath.
	LogPath string
	// LogClose also records close operations. Off by default: shutdown
	// logging is a deployment choice, not part of the core behavior.
	LogClose bool
}

// DefaultLoggingOptions returns the default LoggingMiddleware options
func DefaultLoggingOptions() *LoggingOptions {
	return &LoggingOptions{
		LogPath: DefaultLogPath,
	}
}

// --------------------------------------------------------------------------
// Logging Middleware
// --------------------------------------------------------------------------

// LoggingMiddleware records a timestamped entry for every read and write
// before delegating to the underlying storage (log-before-forward). The log
// destination is opened in append mode and released again on every call, so
// no handle is held across operations and a crash can corrupt at most one
// line.
//
// Log I/O failures are propagated: a read or write whose log entry cannot be
// appended fails without touching the underlying storage. Deployments that
// prefer lossy logging over failed operations must wrap the middleware
// accordingly.
type LoggingMiddleware struct {
	Middleware

	logPath  string
	logClose bool
}

// NewLogging creates a logging middleware over the given factory. A nil opts
// selects the defaults.
func NewLogging(factory storage.Factory, opts *LoggingOptions) *LoggingMiddleware {
	if opts == nil {
		opts = DefaultLoggingOptions()
	}

	path := opts.LogPath
	if path == "" {
		path = DefaultLogPath
	}

	l := &LoggingMiddleware{
		Middleware: *New(factory),
		logPath:    path,
		logClose:   opts.LogClose,
	}
	l.self = l
	return l
}

// logOperation appends a single "<label> performed at <timestamp>" line to
// the log file, acquiring and releasing the handle within this call.
func (l *LoggingMiddleware) logOperation(label string) error {
	f, err := os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return storage.NewError(storage.RetCLogIOError, fmt.Sprintf("failed to open log file %s: %v", l.logPath, err))
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s performed at %s\n", label, time.Now().Format(timestampLayout)); err != nil {
		return storage.NewError(storage.RetCLogIOError, fmt.Sprintf("failed to append to log file %s: %v", l.logPath, err))
	}
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage/interface.go)
// --------------------------------------------------------------------------

func (l *LoggingMiddleware) Read() (storage.Document, error) {
	if err := l.logOperation("Read operation"); err != nil {
		return nil, err
	}

	s, err := l.live(storage.OpRead)
	if err != nil {
		return nil, err
	}
	return s.Read()
}

func (l *LoggingMiddleware) Write(doc storage.Document) error {
	if err := l.logOperation("Write operation"); err != nil {
		return err
	}

	s, err := l.live(storage.OpWrite)
	if err != nil {
		return err
	}
	return s.Write(doc)
}

// Close forwards without logging unless LogClose is configured.
func (l *LoggingMiddleware) Close() error {
	if l.logClose {
		if err := l.logOperation("Close operation"); err != nil {
			return err
		}
	}

	s, err := l.live(storage.OpClose)
	if err != nil {
		return err
	}
	return s.Close()
}

// Invoke dispatches the core operations through the logging overrides and
// forwards everything else down the chain unlogged.
func (l *LoggingMiddleware) Invoke(op string, args ...interface{}) (interface{}, error) {
	switch op {
	case storage.OpRead:
		return l.Read()
	case storage.OpWrite:
		doc, err := writeArg(args)
		if err != nil {
			return nil, err
		}
		return nil, l.Write(doc)
	case storage.OpClose:
		return nil, l.Close()
	default:
		return l.Middleware.Invoke(op, args...)
	}
}
