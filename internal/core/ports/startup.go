package ports

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/domain"
)

// StartupRegistrar installs and removes auto-launch-at-login entries.
//
//go:generate mockgen -source=startup.go -destination=mocks/mock_startup.go -package=mocks
type StartupRegistrar interface {
	// Ensure installs the entry unless one with the same name exists.
	// It reports whether a new entry was created.
	Ensure(ctx context.Context, entry domain.StartupEntry) (bool, error)

	// Remove deletes the named entry. A missing entry is not an error.
	Remove(ctx context.Context, name string) error

	// Exists reports whether the named entry is installed.
	Exists(name string) (bool, error)
}
