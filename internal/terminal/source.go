package terminal

import (
	"os"

	"github.com/atotto/clipboard"
)

// Source is where the document text comes from and goes back to.
type Source interface {
	Read() (string, error)
	Write(text string) error
	Name() string
}

// FileSource is a document stored in a file.
type FileSource struct {
	Path string
}

// Read implements Source.
func (s FileSource) Read() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write implements Source. The file mode is kept.
func (s FileSource) Write(text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(s.Path, []byte(text), mode)
}

// Name implements Source.
func (s FileSource) Name() string {
	return s.Path
}

// ClipboardSource is the system clipboard.
type ClipboardSource struct{}

// Read implements Source.
func (ClipboardSource) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write implements Source.
func (ClipboardSource) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Name implements Source.
func (ClipboardSource) Name() string {
	return "clipboard"
}
