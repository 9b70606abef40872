// Package store persists entity collections as flat JSON files.
//
// Every operation round-trips the whole collection through the
// filesystem: load, apply one change, rewrite. A per-kind RWMutex
// makes each read-modify-write cycle exclusive so concurrent
// mutations cannot lose updates, while plain reads of a kind may run
// concurrently with each other.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
)

// NotFoundError reports a lookup for an id that does not exist.
type NotFoundError struct {
	Kind entity.Kind
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind.Label(), e.ID)
}

// Store is the file-backed entity store.
type Store struct {
	dataDir string
	log     *slog.Logger
	locks   map[entity.Kind]*sync.RWMutex
}

// New creates a Store over dataDir. The directory is created lazily on
// the first write.
func New(dataDir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		dataDir: dataDir,
		log:     log,
		locks: map[entity.Kind]*sync.RWMutex{
			entity.KindCar:      {},
			entity.KindCity:     {},
			entity.KindDocument: {},
		},
	}
}

func (s *Store) lock(kind entity.Kind) *sync.RWMutex {
	return s.locks[kind]
}

// List returns every record of kind. A missing or corrupt data file
// yields an empty collection, never an error.
func (s *Store) List(kind entity.Kind) []entity.Record {
	mu := s.lock(kind)
	mu.RLock()
	defer mu.RUnlock()
	return s.load(kind)
}

// Find returns the record of kind with the given id.
func (s *Store) Find(kind entity.Kind, id int) (entity.Record, error) {
	mu := s.lock(kind)
	mu.RLock()
	defer mu.RUnlock()

	for _, rec := range s.load(kind) {
		if rec.ID() == id {
			return rec.Clone(), nil
		}
	}
	return nil, &NotFoundError{Kind: kind, ID: id}
}

// Insert validates rec, assigns the next id (max existing + 1) and
// appends it to the collection. On a validation error the file is left
// untouched.
func (s *Store) Insert(kind entity.Kind, rec entity.Record) (entity.Record, error) {
	if err := entity.Validate(kind, rec); err != nil {
		return nil, err
	}

	mu := s.lock(kind)
	mu.Lock()
	defer mu.Unlock()

	records := s.load(kind)
	maxID := 0
	for _, r := range records {
		if id := r.ID(); id > maxID {
			maxID = id
		}
	}

	stored := rec.Clone()
	stored["id"] = maxID + 1
	records = append(records, stored)

	if err := s.save(kind, records); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update merges partial into the record with the given id. Every field
// present in partial overwrites the stored value; the id itself is
// immutable. Returns the merged record.
func (s *Store) Update(kind entity.Kind, id int, partial entity.Record) (entity.Record, error) {
	mu := s.lock(kind)
	mu.Lock()
	defer mu.Unlock()

	records := s.load(kind)
	for _, rec := range records {
		if rec.ID() != id {
			continue
		}
		for k, v := range partial {
			rec[k] = v
		}
		rec["id"] = id
		if err := s.save(kind, records); err != nil {
			return nil, err
		}
		return rec.Clone(), nil
	}
	return nil, &NotFoundError{Kind: kind, ID: id}
}

// Delete removes the record with the given id.
func (s *Store) Delete(kind entity.Kind, id int) error {
	mu := s.lock(kind)
	mu.Lock()
	defer mu.Unlock()

	records := s.load(kind)
	for i, rec := range records {
		if rec.ID() == id {
			records = append(records[:i], records[i+1:]...)
			return s.save(kind, records)
		}
	}
	return &NotFoundError{Kind: kind, ID: id}
}
