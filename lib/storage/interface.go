package storage

import (
	"encoding/json"
	"fmt"
)

// --------------------------------------------------------------------------
// Document Model
// --------------------------------------------------------------------------

// Table maps document IDs to their encoded documents.
type Table map[string]json.RawMessage

// Document is the full database snapshot: table name to table contents.
// The storage layer always persists and restores the snapshot as a whole,
// one document-state at a time.
type Document map[string]Table

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Factory is a deferred constructor for a storage backend. It is invoked
// at most once per consumer; configuration is captured by the closure.
// This is used to abstract the creation of the backend from the code that
// decorates or consumes it.
type Factory func() (IStorage, error)

// IStorage is the capability contract every storage backend must satisfy.
// Middlewares wrap an IStorage and may intercept any subset of it.
type IStorage interface {
	// Read returns the full persisted snapshot, or nil if nothing has been
	// persisted yet. Read must be idempotent and side-effect free.
	Read() (doc Document, err error)
	// Write replaces the entire persisted snapshot.
	Write(doc Document) (err error)
	// Close releases any resources held by the backend.
	// Safe to call at most once per instance.
	Close() (err error)
}

// IInvoker is an optional extension of IStorage for backends or middlewares
// that expose named operations beyond the core contract (e.g. "flush").
// It is the escape hatch that lets decorated chains reach backend-specific
// capabilities without every middleware re-declaring them.
type IInvoker interface {
	// Invoke executes the named operation with the given arguments.
	// The operation names of the core contract (OpRead, OpWrite, OpClose)
	// must behave identically to calling the typed methods directly.
	Invoke(op string, args ...interface{}) (result interface{}, err error)
}

// Names of the operations dispatchable via IInvoker.
const (
	OpRead  = "read"
	OpWrite = "write"
	OpClose = "close"
	OpFlush = "flush"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message. Backend errors are never wrapped in this type, they
// propagate unchanged through the middleware layer.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInternalError:
		errorCode = "InternalError"
	case RetCActivationFailed:
		errorCode = "ActivationFailed"
	case RetCNotActivated:
		errorCode = "NotActivated"
	case RetCUnsupportedOperation:
		errorCode = "UnsupportedOperation"
	case RetCInvalidConfig:
		errorCode = "InvalidConfig"
	case RetCLogIOError:
		errorCode = "LogIOError"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("StorageError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new StorageError with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                       // 1: Operation failed due to an internal error.
	RetCActivationFailed                    // 2: Construction of the wrapped backend failed.
	RetCNotActivated                        // 3: Operation requested before the wrapped backend was constructed.
	RetCUnsupportedOperation                // 4: Operation is not supported by the underlying backend.
	RetCInvalidConfig                       // 5: Invalid configuration (e.g. non-positive cache size).
	RetCLogIOError                          // 6: Log destination could not be opened or appended to.
)
