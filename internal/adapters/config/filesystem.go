package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts filesystem reads for testability.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is the settings file under the pycronx home
	return os.ReadFile(path)
}

// MapFSAdapter adapts an fs.FS (typically fstest.MapFS) rooted at Root to FileSystem.
type MapFSAdapter struct {
	FS   fs.FS
	Root string
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{FS: fsys, Root: root}
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// toRelPath strips Root from absPath. Paths outside Root are returned unchanged
// so that the lookup fails with a not-found error.
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return absPath
	}
	if absPath != m.Root && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}
	rel := strings.TrimPrefix(strings.TrimPrefix(absPath, m.Root), string(filepath.Separator))
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}
