// Package registry persists the manager's task records in tasks.json.
package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmestref/pycronx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.Registry on a JSON file mapping id to record.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file.
func (s *Store) Path() string {
	return s.path
}

// List returns all records, oldest first.
func (s *Store) List() ([]domain.RegistryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	out := make([]domain.RegistryRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (domain.RegistryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return domain.RegistryRecord{}, err
	}
	rec, ok := records[id]
	if !ok {
		return domain.RegistryRecord{}, zerr.With(domain.ErrTaskNotFound, "id", id)
	}
	return rec, nil
}

// Put inserts or replaces rec.
func (s *Store) Put(rec domain.RegistryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	records[rec.ID] = rec
	return s.write(records)
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := records[id]; !ok {
		return nil
	}
	delete(records, id)
	return s.write(records)
}

func (s *Store) read() (map[string]domain.RegistryRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]domain.RegistryRecord), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryReadFailed.Error()), "path", s.path)
	}

	records := make(map[string]domain.RegistryRecord)
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryUnmarshalFailed.Error()), "path", s.path)
	}
	for id, rec := range records {
		if rec.ID == "" {
			rec.ID = id
			records[id] = rec
		}
	}
	return records, nil
}

// write replaces the file atomically so concurrent readers never see a partial registry.
func (s *Store) write(records map[string]domain.RegistryRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error()), "path", s.path)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error()), "path", s.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error()), "path", s.path)
	}
	if err := os.Chmod(tmp.Name(), domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error()), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error()), "path", s.path)
	}
	return nil
}
