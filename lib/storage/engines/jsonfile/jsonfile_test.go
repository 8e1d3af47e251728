package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AminahAkhtar/tinydb-withdp/lib/serializer"
	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
	storagetesting "github.com/AminahAkhtar/tinydb-withdp/lib/storage/testing"
)

func TestJSONStorageContract(t *testing.T) {
	dir := t.TempDir()
	i := 0
	storagetesting.RunStorageTests(t, "JSONFile", func() (storage.IStorage, error) {
		i++
		return NewJSONStorage(filepath.Join(dir, "db"+string(rune('a'+i))+".json"), nil)
	})
}

func TestJSONStorageContractGob(t *testing.T) {
	dir := t.TempDir()
	i := 0
	storagetesting.RunStorageTests(t, "GobFile", func() (storage.IStorage, error) {
		i++
		return NewJSONStorage(filepath.Join(dir, "db"+string(rune('a'+i))+".gob"), serializer.NewGOBSerializer())
	})
}

func TestJSONStorageTouchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	s, err := NewJSONStorage(path, nil)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer s.Close()

	// Opening must create the file even before the first write
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected the database file to exist after open: %v", err)
	}
}

func TestJSONStoragePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	expected := storage.Document{
		"_default": {
			"1": json.RawMessage(`{"name":"apple"}`),
		},
	}

	s, err := NewJSONStorage(path, nil)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	if err := s.Write(expected); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewJSONStorage(path, nil)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer reopened.Close()

	doc, err := reopened.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(doc, expected) {
		t.Errorf("Expected %v after reopen, got %v", expected, doc)
	}
}

func TestJSONStorageTruncatesShrinkingSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	s, err := NewJSONStorage(path, nil)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer s.Close()

	large := storage.Document{
		"_default": {
			"1": json.RawMessage(`{"name":"a very long value that pads the file out considerably"}`),
		},
	}
	if err := s.Write(large); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	small := storage.Document{
		"_default": {
			"1": json.RawMessage(`{}`),
		},
	}
	if err := s.Write(small); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	// A stale tail from the larger snapshot would break decoding here
	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read after shrinking write failed: %v", err)
	}
	if !reflect.DeepEqual(doc, small) {
		t.Errorf("Expected %v, got %v", small, doc)
	}
}

func TestJSONStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to seed corrupt file: %v", err)
	}

	s, err := NewJSONStorage(path, nil)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer s.Close()

	if _, err := s.Read(); err == nil {
		t.Errorf("Expected a decode error for a corrupt database file")
	}
}

func TestJSONEngineRegistered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	factory, err := storage.GetEngine("json", storage.EngineConfig{Path: path})
	if err != nil {
		t.Fatalf("Expected the json engine to be registered: %v", err)
	}
	s, err := factory()
	if err != nil {
		t.Fatalf("Factory failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected the database file to be created: %v", err)
	}
}
