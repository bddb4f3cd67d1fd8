package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/elC0mpa/aws-costpilot/model"
)

// Store persists the single catalog record. Implementations return a nil
// record (not an error) when nothing usable is stored, so missing and
// corrupt content both read as an empty cache.
type Store interface {
	Load() (*model.CatalogRecord, error)
	Save(record *model.CatalogRecord) error
	Delete() error
}

// fileStore keeps the record as one JSON blob. Concurrent refreshes race
// benignly: both write the same content and the last write wins.
type fileStore struct {
	path string
}

func NewFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

func (f *fileStore) Load() (*model.CatalogRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var record model.CatalogRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// corrupt cache reads as empty and gets rewritten on refresh
		return nil, nil
	}
	if record.CachedAt.IsZero() || record.Services == nil {
		return nil, nil
	}

	return &record, nil
}

func (f *fileStore) Save(record *model.CatalogRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(f.path, data, 0o644)
}

func (f *fileStore) Delete() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// memoryStore holds the record in memory, for tests and ephemeral runs
type memoryStore struct {
	record *model.CatalogRecord
}

func NewMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (m *memoryStore) Load() (*model.CatalogRecord, error) {
	return m.record, nil
}

func (m *memoryStore) Save(record *model.CatalogRecord) error {
	m.record = record
	return nil
}

func (m *memoryStore) Delete() error {
	m.record = nil
	return nil
}
