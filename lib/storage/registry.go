package storage

import (
	"fmt"
	"sort"

	"github.com/AminahAkhtar/tinydb-withdp/lib/serializer"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Engine Registry
// --------------------------------------------------------------------------

// EngineConfig holds the construction parameters an engine constructor may
// consume. Engines ignore fields they have no use for (e.g. the memory
// engine ignores Path).
type EngineConfig struct {
	// Path is the location of the database file for file-backed engines.
	Path string
	// Serializer encodes and decodes the snapshot for file-backed engines.
	Serializer serializer.ISerializer
}

// EngineConstructor builds a Factory for a storage engine from its config.
// The returned Factory must not acquire any resources until it is invoked.
type EngineConstructor func(cfg EngineConfig) Factory

// engines maps engine names to their constructors. Engine packages register
// themselves in their init function.
var engines = xsync.NewMapOf[string, EngineConstructor]()

// RegisterEngine makes a storage engine resolvable by name. It panics if the
// name is already taken since double registration is a programming error.
func RegisterEngine(name string, ctor EngineConstructor) {
	if _, loaded := engines.LoadOrStore(name, ctor); loaded {
		panic(fmt.Sprintf("storage engine %q registered twice", name))
	}
}

// GetEngine resolves a registered engine by name and returns a Factory for
// it with the given config.
func GetEngine(name string, cfg EngineConfig) (Factory, error) {
	ctor, ok := engines.Load(name)
	if !ok {
		return nil, NewError(RetCUnsupportedOperation, fmt.Sprintf("unknown storage engine %q (available: %v)", name, EngineNames()))
	}
	return ctor(cfg), nil
}

// EngineNames returns the names of all registered engines in sorted order.
func EngineNames() []string {
	names := make([]string, 0)
	engines.Range(func(name string, _ EngineConstructor) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
