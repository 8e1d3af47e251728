package jsonfile

import (
	"fmt"
	"io"
	"os"

	"github.com/AminahAkhtar/tinydb-withdp/lib/serializer"
	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
)

// --------------------------------------------------------------------------
// Engine Registration
// --------------------------------------------------------------------------

func init() {
	storage.RegisterEngine("json", func(cfg storage.EngineConfig) storage.Factory {
		return func() (storage.IStorage, error) {
			return NewJSONStorage(cfg.Path, cfg.Serializer)
		}
	})
}

// --------------------------------------------------------------------------
// Implementation
// --------------------------------------------------------------------------

// jsonFileImpl persists the database snapshot to a single file. The file is
// created on open if it does not exist and the handle is held until Close.
type jsonFileImpl struct {
	file       *os.File
	serializer serializer.ISerializer
}

// NewJSONStorage opens (creating if necessary) the database file at path.
// If s is nil the JSON serializer is used, so database files are
// human-readable by default.
//
// Thread-safety: instances are not safe for concurrent use, callers must
// serialize access.
func NewJSONStorage(path string, s serializer.ISerializer) (storage.IStorage, error) {
	if s == nil {
		s = serializer.NewJSONSerializer()
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file %s: %w", path, err)
	}

	return &jsonFileImpl{
		file:       f,
		serializer: s,
	}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage/interface.go)
// --------------------------------------------------------------------------

func (j *jsonFileImpl) Read() (storage.Document, error) {
	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(j.file)
	if err != nil {
		return nil, err
	}

	// An empty file means nothing has been persisted yet
	if len(data) == 0 {
		return nil, nil
	}

	var doc storage.Document
	if err := j.serializer.Deserialize(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode database file %s: %w", j.file.Name(), err)
	}
	return doc, nil
}

func (j *jsonFileImpl) Write(doc storage.Document) error {
	data, err := j.serializer.Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to encode database: %w", err)
	}

	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := j.file.Write(data); err != nil {
		return err
	}
	if err := j.file.Sync(); err != nil {
		return err
	}

	// Remove any trailing bytes from a previously larger snapshot
	return j.file.Truncate(int64(len(data)))
}

func (j *jsonFileImpl) Close() error {
	return j.file.Close()
}
