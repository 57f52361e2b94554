package ports

import "github.com/bmestref/pycronx/internal/core/domain"

// IconProvider produces indicator icons.
//
//go:generate mockgen -source=icons.go -destination=mocks/mock_icons.go -package=mocks
type IconProvider interface {
	// Generate renders an icon for the given label and saves it to the icons directory.
	Generate(label string) (*domain.Icon, error)

	// Load reads an existing icon. Relative paths resolve against the icons directory.
	Load(path string) (*domain.Icon, error)
}
