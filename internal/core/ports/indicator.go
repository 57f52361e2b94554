package ports

import (
	"context"

	"github.com/bmestref/pycronx/internal/core/domain"
)

// StatusIndicator is the interactive surface of a running daemon.
//
//go:generate mockgen -source=indicator.go -destination=mocks/mock_indicator.go -package=mocks
type StatusIndicator interface {
	// Show blocks until ctx is done or the user exits.
	// On exit it calls stop before returning.
	Show(ctx context.Context, task *domain.Task, icon *domain.Icon, stop func()) error
}
