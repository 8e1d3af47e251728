// Package serializer provides document serialization capabilities for the
// file-backed storage engines. It defines a common interface and multiple
// implementations for encoding and decoding the database snapshot.
//
// The package focuses on:
//   - Providing a consistent interface for different serialization formats
//   - Offering implementations with different readability and size tradeoffs
//   - Keeping the storage engines independent of a concrete encoding
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must
//     satisfy.
//
//   - jsonSerializerImpl: Implementation using JSON encoding. Produces
//     human-readable database files and is the default for the json file
//     engine.
//
//   - gobSerializerImpl: Implementation using Go's built-in gob encoding,
//     offering compact binary files at the cost of readability and
//     cross-language interoperability.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Serializers are typically created once and reused throughout the
//	application:
//
//	  s := serializer.NewJSONSerializer()
//	  data, err := s.Serialize(doc)
//	  // ... persist data ...
//	  var restored storage.Document
//	  err = s.Deserialize(data, &restored)
package serializer
