// Package testing provides a standardised test suite for storage backends
// that satisfy the storage.IStorage interface.
//
// The suite validates conformance to the capability contract: an empty
// backend reports a nil snapshot, writes replace the snapshot as a whole,
// reads are idempotent and close releases the backend cleanly.
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() (storage.IStorage, error) {
//		return NewMyStorage()
//	}
//
//	// Running the standard test suite
//	testing.RunStorageTests(t, "MyStorage", factory)
package testing
