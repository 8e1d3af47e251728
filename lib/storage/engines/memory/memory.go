package memory

import (
	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
)

// --------------------------------------------------------------------------
// Engine Registration
// --------------------------------------------------------------------------

func init() {
	storage.RegisterEngine("memory", func(_ storage.EngineConfig) storage.Factory {
		return func() (storage.IStorage, error) {
			return NewMemoryStorage(), nil
		}
	})
}

// --------------------------------------------------------------------------
// Implementation
// --------------------------------------------------------------------------

// memoryImpl holds the database snapshot in process memory. Nothing survives
// a restart, which makes it suitable for tests and ephemeral databases.
type memoryImpl struct {
	doc    storage.Document
	closed bool
}

// NewMemoryStorage creates a new in-memory storage backend.
//
// Thread-safety: instances are not safe for concurrent use, callers must
// serialize access.
func NewMemoryStorage() storage.IStorage {
	return &memoryImpl{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage/interface.go)
// --------------------------------------------------------------------------

func (m *memoryImpl) Read() (storage.Document, error) {
	if m.closed {
		return nil, storage.NewError(storage.RetCInternalError, "storage already closed")
	}
	if m.doc == nil {
		return nil, nil
	}
	return copyDocument(m.doc), nil
}

func (m *memoryImpl) Write(doc storage.Document) error {
	if m.closed {
		return storage.NewError(storage.RetCInternalError, "storage already closed")
	}
	m.doc = copyDocument(doc)
	return nil
}

func (m *memoryImpl) Close() error {
	m.closed = true
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// copyDocument deep-copies a snapshot so callers can never alias the stored
// state through a returned or retained reference.
func copyDocument(doc storage.Document) storage.Document {
	if doc == nil {
		return nil
	}
	cp := make(storage.Document, len(doc))
	for name, table := range doc {
		t := make(storage.Table, len(table))
		for id, raw := range table {
			b := make([]byte, len(raw))
			copy(b, raw)
			t[id] = b
		}
		cp[name] = t
	}
	return cp
}
