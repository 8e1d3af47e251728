// Package memory implements an in-memory storage backend (IStorage). The
// snapshot lives entirely in process memory and is lost when the process
// exits.
//
// Reads return a deep copy of the held snapshot so callers cannot mutate the
// stored state through the returned value; writes likewise copy their input.
// Close marks the instance as closed, after which reads and writes fail.
//
// The engine registers itself under the name "memory" in the storage engine
// registry.
package memory
