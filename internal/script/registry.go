package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"github.com/kdouveno/selescript/internal/logging"
)

// Entry is a compiled script file.
type Entry struct {
	Path     string
	Proto    *lua.FunctionProto
	ModTime  time.Time
	Size     int64
	LoadedAt time.Time
}

// fresh reports whether e was compiled from the file described by info.
func (e *Entry) fresh(info os.FileInfo) bool {
	return e.ModTime.Equal(info.ModTime()) && e.Size == info.Size()
}

// Registry holds compiled scripts keyed by path.
//
// A cached entry is reused while the file keeps its modification time and
// size. A Watcher drops entries as soon as their file changes, which also
// catches rewrites the file times cannot tell apart.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	logger  *logging.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *logging.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		logger:  logging.OrNull(logger).WithComponent("registry"),
	}
}

// Load returns the compiled script at path, compiling it unless a fresh
// entry is cached. A file that can no longer be read or compiled loses its
// entry.
func (r *Registry) Load(path string) (*Entry, error) {
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		r.Invalidate(path)
		return nil, &LoadError{Path: path, Err: err}
	}

	r.mu.RLock()
	cached, ok := r.entries[path]
	r.mu.RUnlock()
	if ok && cached.fresh(info) {
		r.logger.Debug("cache hit %s", path)
		return cached, nil
	}

	entry, err := compileFile(path, info)
	if err != nil {
		r.Invalidate(path)
		return nil, err
	}

	r.mu.Lock()
	r.entries[path] = entry
	r.mu.Unlock()

	r.logger.Debug("compiled %s", path)
	return entry, nil
}

func compileFile(path string, info os.FileInfo) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	chunk, err := parse.Parse(f, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return &Entry{
		Path:     path,
		Proto:    proto,
		ModTime:  info.ModTime(),
		Size:     info.Size(),
		LoadedAt: time.Now(),
	}, nil
}

// Invalidate removes the cached entry for path. It reports whether an
// entry was present.
func (r *Registry) Invalidate(path string) bool {
	path = filepath.Clean(path)
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[path]; !ok {
		return false
	}
	delete(r.entries, path)
	return true
}

// Instantiate evaluates the entry's chunk in state and decodes its export.
// Errors raised while evaluating or decoding are reported as LoadError.
func (r *Registry) Instantiate(ctx context.Context, state *State, entry *Entry) (*Module, error) {
	v, err := state.Exec(ctx, entry.Proto)
	if err != nil {
		return nil, &LoadError{Path: entry.Path, Err: err}
	}

	mod, err := decodeModule(entry.Path, v)
	if err != nil {
		return nil, &LoadError{Path: entry.Path, Err: err}
	}
	r.logger.WithField("params", len(mod.Params)).Debug("instantiated %s", entry.Path)
	return mod, nil
}

// String implements fmt.Stringer.
func (e *Entry) String() string {
	return fmt.Sprintf("%s (modified %s)", e.Path, e.ModTime.Format(time.RFC3339))
}
