package domain

import "strings"

// IconMode selects how the status indicator obtains its icon.
type IconMode int

// Icon modes.
const (
	IconNone IconMode = iota
	IconRandom
	IconPath
)

// IconSpec is the icon argument of a task.
type IconSpec struct {
	Mode IconMode
	Path string
}

// ParseIconSpec parses "none", "random" (case-insensitive) or an icon path.
func ParseIconSpec(arg string) IconSpec {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "none", "":
		return IconSpec{Mode: IconNone}
	case "random":
		return IconSpec{Mode: IconRandom}
	default:
		return IconSpec{Mode: IconPath, Path: strings.TrimSpace(arg)}
	}
}

// String returns the icon argument as it appears on the command line.
func (s IconSpec) String() string {
	switch s.Mode {
	case IconRandom:
		return "random"
	case IconPath:
		return s.Path
	default:
		return "none"
	}
}

// Icon is a resolved indicator icon.
type Icon struct {
	// Path is the image file on disk.
	Path string
	// Text is the short label drawn on generated icons, or derived from the file name.
	Text string
	// Color is the dominant colour of the image as "#RRGGBB".
	Color string
	// TextColor is black or white, whichever reads better on Color.
	TextColor string
}
