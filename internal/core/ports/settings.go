package ports

import "github.com/bmestref/pycronx/internal/core/domain"

// SettingsLoader resolves the effective settings.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load reads config.yaml under home, applies environment overrides and validates the result.
	Load(home string) (domain.Settings, error)
}
