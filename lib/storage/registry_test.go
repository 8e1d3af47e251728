package storage

import (
	"strings"
	"testing"
)

// stubStorage is a minimal IStorage used to exercise the registry.
type stubStorage struct{}

func (s *stubStorage) Read() (Document, error) { return nil, nil }
func (s *stubStorage) Write(Document) error    { return nil }
func (s *stubStorage) Close() error            { return nil }

func stubConstructor(_ EngineConfig) Factory {
	return func() (IStorage, error) {
		return &stubStorage{}, nil
	}
}

func TestRegistryResolvesRegisteredEngine(t *testing.T) {
	RegisterEngine("stub", stubConstructor)

	factory, err := GetEngine("stub", EngineConfig{})
	if err != nil {
		t.Fatalf("GetEngine failed: %v", err)
	}
	s, err := factory()
	if err != nil {
		t.Fatalf("Factory failed: %v", err)
	}
	if s == nil {
		t.Errorf("Expected a storage instance")
	}

	found := false
	for _, name := range EngineNames() {
		if name == "stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected EngineNames to contain the registered engine, got %v", EngineNames())
	}
}

func TestRegistryUnknownEngine(t *testing.T) {
	_, err := GetEngine("does-not-exist", EngineConfig{})
	if err == nil {
		t.Fatalf("Expected an error for an unknown engine")
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("Expected the error to name the engine, got %v", err)
	}
}

func TestRegistryDoubleRegistrationPanics(t *testing.T) {
	RegisterEngine("stub-double", stubConstructor)

	defer func() {
		if recover() == nil {
			t.Errorf("Expected double registration to panic")
		}
	}()
	RegisterEngine("stub-double", stubConstructor)
}
