// Package storage defines the capability contract for pluggable document
// storage backends and the shared error model of the storage layer. It is
// the foundation the middleware package decorates and the engine packages
// implement.
//
// The package focuses on:
//   - A minimal interface (IStorage) every backend must satisfy: Read, Write
//     and Close over a whole-document snapshot
//   - Deferred backend construction through the Factory pattern, so that
//     decorators can be assembled before any backend resources are acquired
//   - A named-operation escape hatch (IInvoker) for capabilities beyond the
//     core contract, dispatched by operation name
//   - A registry of storage engines so callers can resolve backends by name
//
// Key Components:
//
//   - IStorage Interface: The core abstraction. Read returns the full
//     persisted snapshot (nil if nothing was ever written), Write replaces
//     it atomically from the backend's perspective, Close releases backend
//     resources. All implementations share this interface, allowing
//     applications to switch backends without code changes.
//
//   - Factory: A function type that abstracts the creation of IStorage
//     instances, providing dependency injection and deferred construction.
//     A Factory is invoked at most once per consumer.
//
//   - IInvoker: Optional extension for named operations ("flush", backend
//     specific capabilities). Middlewares forward unknown operations through
//     this interface so non-overridden capabilities pass through untouched.
//
//   - Error System: A structured error reporting mechanism using typed
//     return codes and descriptive messages. Backend errors are never
//     wrapped; they propagate unchanged through the decoration layer.
//
// Implementations:
//
//	Two engines implement IStorage:
//
//	- Memory Engine (engines/memory): holds the snapshot in process memory.
//	  Suitable for tests and ephemeral databases.
//
//	- JSON File Engine (engines/jsonfile): persists the snapshot to a single
//	  file using a pluggable serializer.
//
// Concurrency: the storage layer is single-threaded by contract. Instances
// must not be shared between goroutines without external coordination.
package storage
