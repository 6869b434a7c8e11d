// Package storage keeps user scripts in a directory, one file per script.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Template is written to every new script.
const Template = `-- selections is a list of records for:
-- 1. each current text selection
-- 2. the entire contents of the document when nothing is selected
return function(selections)
  return selections
end
`

var (
	// ErrScriptExists is returned when creating a script whose file exists.
	ErrScriptExists = errors.New("script already exists")

	// ErrInvalidName is returned for empty names or names with path separators.
	ErrInvalidName = errors.New("invalid script name")

	// ErrNotFound is returned when a named script does not exist.
	ErrNotFound = errors.New("script not found")
)

// StorageError reports a scripts directory that cannot be used.
type StorageError struct {
	Dir string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("scripts directory %s: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Script is a stored script file.
type Script struct {
	Name string
	Path string
}

// Store manages the scripts directory.
type Store struct {
	dir string
	ext string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithExtension sets the script file extension. The default is ".lua".
func WithExtension(ext string) StoreOption {
	return func(s *Store) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.ext = ext
	}
}

// New creates a Store rooted at dir.
func New(dir string, opts ...StoreOption) *Store {
	s := &Store{dir: dir, ext: ".lua"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the scripts directory.
func (s *Store) Dir() string {
	return s.dir
}

// Ext returns the script file extension.
func (s *Store) Ext() string {
	return s.ext
}

// Ensure creates the scripts directory and its parents if needed.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &StorageError{Dir: s.dir, Err: err}
	}
	return nil
}

// List returns the scripts in the directory sorted by name. A missing or
// unreadable directory is a StorageError.
func (s *Store) List() ([]Script, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &StorageError{Dir: s.dir, Err: err}
	}

	scripts := make([]Script, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != s.ext {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), s.ext)
		scripts = append(scripts, Script{Name: name, Path: filepath.Join(s.dir, entry.Name())})
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].Name < scripts[j].Name
	})
	return scripts, nil
}

// Path returns the file path for name.
func (s *Store) Path(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name+s.ext), nil
}

// Lookup returns the stored script called name.
func (s *Store) Lookup(name string) (Script, error) {
	path, err := s.Path(name)
	if err != nil {
		return Script{}, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Script{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Script{}, &StorageError{Dir: s.dir, Err: err}
	}
	return Script{Name: name, Path: path}, nil
}

// Create writes the template for a new script called name and returns it.
// The directory is created if needed. An existing file is never overwritten.
func (s *Store) Create(name string) (Script, error) {
	path, err := s.Path(name)
	if err != nil {
		return Script{}, err
	}
	if err := s.Ensure(); err != nil {
		return Script{}, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return Script{}, fmt.Errorf("%w: %s", ErrScriptExists, path)
		}
		return Script{}, &StorageError{Dir: s.dir, Err: err}
	}
	if _, err := f.WriteString(Template); err != nil {
		f.Close()
		return Script{}, &StorageError{Dir: s.dir, Err: err}
	}
	if err := f.Close(); err != nil {
		return Script{}, &StorageError{Dir: s.dir, Err: err}
	}
	return Script{Name: name, Path: path}, nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
