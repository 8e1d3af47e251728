package middleware

import (
	"fmt"

	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
)

// --------------------------------------------------------------------------
// Base Middleware
// --------------------------------------------------------------------------

// Middleware is the generic delegating decorator all concrete middlewares
// build on. It wraps a storage.Factory, defers construction of the wrapped
// backend until Activate, and forwards every operation it does not override
// to the live instance.
//
// Invariant: exactly one of {factory pending, backend constructed} holds.
// Once the backend is constructed the factory is never invoked again.
type Middleware struct {
	factory   storage.Factory
	storage   storage.IStorage
	activated bool

	// self is the outermost decorator value. Concrete middlewares embedding
	// Middleware must point it at themselves so Factory hands out the
	// decorated instance and not the embedded base.
	self storage.IStorage
}

// New creates a middleware wrapping the given factory. The factory is stored
// but not invoked.
func New(factory storage.Factory) *Middleware {
	m := &Middleware{factory: factory}
	m.self = m
	return m
}

// Activate constructs the wrapped backend by invoking the stored factory.
// The factory runs at most once: a second call after success is a no-op and
// a factory failure propagates unchanged, leaving the middleware unusable
// (activation is single-shot and not retried).
func (m *Middleware) Activate() error {
	if m.activated {
		if m.storage == nil {
			return storage.NewError(storage.RetCActivationFailed, "activation already failed, re-activation is not supported")
		}
		return nil
	}

	m.activated = true
	s, err := m.factory()
	if err != nil {
		return err
	}
	m.storage = s
	return nil
}

// Factory exposes the middleware itself as a deferred constructor, which is
// what makes nesting work: the outer middleware's activation triggers this
// factory, which activates the next link, and so on down to the backend.
func (m *Middleware) Factory() storage.Factory {
	return func() (storage.IStorage, error) {
		if err := m.Activate(); err != nil {
			return nil, err
		}
		return m.self, nil
	}
}

// Wrapped returns the live wrapped instance, or nil before activation.
func (m *Middleware) Wrapped() storage.IStorage {
	return m.storage
}

// live returns the wrapped instance or a typed error naming the requested
// operation if the middleware has not been activated.
func (m *Middleware) live(op string) (storage.IStorage, error) {
	if m.storage == nil {
		return nil, storage.NewError(storage.RetCNotActivated, fmt.Sprintf("%s requested before activation", op))
	}
	return m.storage, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage/interface.go)
// --------------------------------------------------------------------------

func (m *Middleware) Read() (storage.Document, error) {
	s, err := m.live(storage.OpRead)
	if err != nil {
		return nil, err
	}
	return s.Read()
}

func (m *Middleware) Write(doc storage.Document) error {
	s, err := m.live(storage.OpWrite)
	if err != nil {
		return err
	}
	return s.Write(doc)
}

func (m *Middleware) Close() error {
	s, err := m.live(storage.OpClose)
	if err != nil {
		return err
	}
	return s.Close()
}

// Invoke forwards a named operation to the wrapped instance. If the wrapped
// instance is itself an IInvoker (e.g. a nested middleware) the whole call
// is delegated to it; otherwise the core operations are dispatched to the
// typed methods and anything else is unsupported.
func (m *Middleware) Invoke(op string, args ...interface{}) (interface{}, error) {
	s, err := m.live(op)
	if err != nil {
		return nil, err
	}

	if inv, ok := s.(storage.IInvoker); ok {
		return inv.Invoke(op, args...)
	}

	switch op {
	case storage.OpRead:
		return s.Read()
	case storage.OpWrite:
		doc, err := writeArg(args)
		if err != nil {
			return nil, err
		}
		return nil, s.Write(doc)
	case storage.OpClose:
		return nil, s.Close()
	default:
		return nil, storage.NewError(storage.RetCUnsupportedOperation, fmt.Sprintf("operation %q is not supported by the wrapped storage", op))
	}
}

// writeArg extracts the snapshot argument of a dispatched write operation.
func writeArg(args []interface{}) (storage.Document, error) {
	if len(args) != 1 {
		return nil, storage.NewError(storage.RetCUnsupportedOperation, fmt.Sprintf("write expects exactly one argument, got %d", len(args)))
	}
	doc, ok := args[0].(storage.Document)
	if !ok {
		return nil, storage.NewError(storage.RetCUnsupportedOperation, fmt.Sprintf("write expects a storage.Document argument, got %T", args[0]))
	}
	return doc, nil
}
