// Package storage persists uploaded carousel files on the local filesystem.
// The HTTP layer serves the same directory read-only under /uploads.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploaded files into a single managed directory. Names
// are generated by the caller and must not contain path separators; Save and
// Remove reject anything that would escape the directory.
type LocalStore struct {
	// Dir is the managed upload directory.
	Dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// bound to it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: upload dir must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

// Save writes data to <Dir>/<name> with 0644 permissions.
func (s *LocalStore) Save(name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

// Remove deletes <Dir>/<name>. Removing a file that does not exist returns
// the underlying os error; callers treat removal as best effort.
func (s *LocalStore) Remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return os.Remove(p)
}

// path validates name and joins it under the managed directory.
func (s *LocalStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("storage: invalid file name %q", name)
	}
	return filepath.Join(s.Dir, name), nil
}
