package script

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/kdouveno/selescript/internal/logging"
)

// Watcher invalidates registry entries when script files change on disk.
type Watcher struct {
	mu sync.Mutex

	watcher  *fsnotify.Watcher
	registry *Registry
	ext      string
	onChange func(path string)
	logger   *logging.Logger

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithExtension limits the watcher to files with ext. The default is ".lua".
func WithExtension(ext string) WatcherOption {
	return func(w *Watcher) {
		w.ext = ext
	}
}

// WithOnChange sets a callback run after a script file changes, once its
// entry is invalidated. It runs on the watcher goroutine and must not block.
func WithOnChange(fn func(path string)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// WithLogger sets the watcher logger.
func WithLogger(logger *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher watches dir and invalidates entries of registry.
func NewWatcher(registry *Registry, dir string, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		registry: registry,
		ext:      ".lua",
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = logging.OrNull(w.logger).WithComponent("watcher")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w.watcher = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !strings.EqualFold(filepath.Ext(ev.Name), w.ext) {
		return
	}
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	if w.registry.Invalidate(ev.Name) {
		w.logger.Debug("invalidated %s (%s)", ev.Name, ev.Op)
	}
	if w.onChange != nil {
		w.onChange(ev.Name)
	}
}
