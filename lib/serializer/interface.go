package serializer

// ISerializer is the interface for all document serializers. It is consumed
// by file-backed storage engines to encode the database snapshot.
type ISerializer interface {
	// Serialize serializes a value into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(v interface{}) ([]byte, error)
	// Deserialize deserializes a byte array into a value
	// It takes a byte array and a pointer to the target value as parameters
	// It returns an error if any
	Deserialize(b []byte, v interface{}) error
}
