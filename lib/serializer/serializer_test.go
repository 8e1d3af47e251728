package serializer

import (
	"encoding/json"
	"reflect"
	"testing"
)

// document mirrors the snapshot shape used by the storage layer
// (table name -> document id -> encoded document).
type document map[string]map[string]json.RawMessage

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() ISerializer{
	"JSON": NewJSONSerializer,
	"GOB":  NewGOBSerializer,
}

// testDocuments creates a set of snapshots with different shapes
func testDocuments() []document {
	return []document{
		// Empty database
		{},

		// Single table, single document
		{
			"_default": {
				"1": json.RawMessage(`{"name":"apple","count":7}`),
			},
		},

		// Multiple tables
		{
			"_default": {
				"1": json.RawMessage(`{"name":"apple"}`),
				"2": json.RawMessage(`{"name":"pear"}`),
			},
			"users": {
				"42": json.RawMessage(`{"admin":true}`),
			},
		},

		// Empty table
		{
			"log": {},
		},
	}
}

// TestSerializerRoundTrip tests that snapshots can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	docs := testDocuments()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			for i, doc := range docs {
				data, err := s.Serialize(doc)
				if err != nil {
					t.Errorf("Failed to serialize document %d: %v", i, err)
					continue
				}

				var restored document
				if err := s.Deserialize(data, &restored); err != nil {
					t.Errorf("Failed to deserialize document %d: %v", i, err)
					continue
				}

				if len(doc) == 0 && len(restored) == 0 {
					continue
				}

				if !reflect.DeepEqual(doc, restored) {
					t.Errorf("Document %d: expected %v, got %v", i, doc, restored)
				}
			}
		})
	}
}

// TestDeserializeGarbage tests that invalid input surfaces an error
func TestDeserializeGarbage(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			var restored document
			if err := s.Deserialize([]byte("\x00\x01not a document"), &restored); err == nil {
				t.Errorf("Expected error when deserializing garbage, got nil")
			}
		})
	}
}
