// Package jsonfile implements a file-backed storage backend (IStorage). The
// full database snapshot is persisted to a single file using a pluggable
// serializer, JSON by default.
//
// The database file is created on open ("touch" semantics) and the file
// handle is held until Close. A read loads the whole file; an empty file is
// reported as "nothing persisted yet" (nil snapshot). A write rewrites the
// file from offset zero, syncs it and truncates any leftover tail from a
// previously larger snapshot.
//
// The engine registers itself under the name "json" in the storage engine
// registry.
package jsonfile
