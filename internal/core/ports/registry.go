package ports

import "github.com/bmestref/pycronx/internal/core/domain"

// Registry persists the manager's records of running tasks.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// List returns all records ordered by creation time.
	List() ([]domain.RegistryRecord, error)

	// Get returns the record with the given id.
	Get(id string) (domain.RegistryRecord, error)

	// Put inserts or replaces a record.
	Put(rec domain.RegistryRecord) error

	// Delete removes a record. A missing id is not an error.
	Delete(id string) error

	// Path returns the file backing the registry.
	Path() string
}
