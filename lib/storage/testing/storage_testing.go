package testing

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
)

// RunStorageTests runs the storage capability contract suite against an
// IStorage implementation. The factory is invoked once per subtest so every
// test starts from a fresh, empty backend.
func RunStorageTests(t *testing.T, name string, factory storage.Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("EmptyRead", func(t *testing.T) {
			testEmptyRead(t, mustCreate(t, factory))
		})

		t.Run("WriteRead", func(t *testing.T) {
			testWriteRead(t, mustCreate(t, factory))
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, mustCreate(t, factory))
		})

		t.Run("ReadIdempotent", func(t *testing.T) {
			testReadIdempotent(t, mustCreate(t, factory))
		})

		t.Run("Close", func(t *testing.T) {
			testClose(t, mustCreate(t, factory))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func mustCreate(t *testing.T, factory storage.Factory) storage.IStorage {
	t.Helper()
	s, err := factory()
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	return s
}

func testDocument() storage.Document {
	return storage.Document{
		"_default": {
			"1": json.RawMessage(`{"name":"apple","count":7}`),
			"2": json.RawMessage(`{"name":"pear","count":3}`),
		},
		"users": {
			"42": json.RawMessage(`{"admin":true}`),
		},
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testEmptyRead(t *testing.T, s storage.IStorage) {
	defer s.Close()

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read on empty storage failed: %v", err)
	}
	if doc != nil {
		t.Errorf("Expected nil snapshot from empty storage, got %v", doc)
	}
}

func testWriteRead(t *testing.T, s storage.IStorage) {
	defer s.Close()

	expected := testDocument()
	if err := s.Write(expected); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(doc, expected) {
		t.Errorf("Expected %v, got %v", expected, doc)
	}
}

func testOverwrite(t *testing.T, s storage.IStorage) {
	defer s.Close()

	if err := s.Write(testDocument()); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// The snapshot is replaced as a whole, nothing from the first write
	// may survive
	replacement := storage.Document{
		"log": {
			"1": json.RawMessage(`{"msg":"replaced"}`),
		},
	}
	if err := s.Write(replacement); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(doc, replacement) {
		t.Errorf("Expected %v, got %v", replacement, doc)
	}
	if _, ok := doc["_default"]; ok {
		t.Errorf("Expected the previous snapshot to be fully replaced")
	}
}

func testReadIdempotent(t *testing.T, s storage.IStorage) {
	defer s.Close()

	if err := s.Write(testDocument()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	first, err := s.Read()
	if err != nil {
		t.Fatalf("First read failed: %v", err)
	}
	second, err := s.Read()
	if err != nil {
		t.Fatalf("Second read failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected repeated reads to return the same snapshot")
	}
}

func testClose(t *testing.T, s storage.IStorage) {
	if err := s.Write(testDocument()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
