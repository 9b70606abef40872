package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
)

// fileNames maps each kind to its data file.
var fileNames = map[entity.Kind]string{
	entity.KindCar:      "cars.json",
	entity.KindCity:     "cities.json",
	entity.KindDocument: "documents.json",
}

// documentsWrapper is the on-disk shape of documents.json: the array
// sits under a top-level "documents" key, unlike the other files.
type documentsWrapper struct {
	Documents []entity.Record `json:"documents"`
}

func (s *Store) path(kind entity.Kind) string {
	return filepath.Join(s.dataDir, fileNames[kind])
}

// load reads the whole collection for kind. Callers must hold the
// kind's lock. Any read or parse failure degrades to an empty
// collection.
func (s *Store) load(kind entity.Kind) []entity.Record {
	path := s.path(kind)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to read data file", "path", path, "error", err)
		}
		return nil
	}

	if kind == entity.KindDocument {
		var wrapped documentsWrapper
		if err := json.Unmarshal(data, &wrapped); err != nil {
			s.log.Warn("failed to parse data file", "path", path, "error", err)
			return nil
		}
		return wrapped.Documents
	}

	var records []entity.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("failed to parse data file", "path", path, "error", err)
		return nil
	}
	return records
}

// save rewrites the whole collection for kind using a temp-file rename
// so readers never observe a partial file. Callers must hold the
// kind's write lock.
func (s *Store) save(kind entity.Kind, records []entity.Record) error {
	if records == nil {
		records = []entity.Record{}
	}

	var payload any = records
	if kind == entity.KindDocument {
		payload = documentsWrapper{Documents: records}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return err
	}

	path := s.path(kind)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
