package history

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies the embedding application when a shared history file
// changes on disk, typically because another process appended to it. It
// watches the containing directory so atomic rename-replace writes are
// seen too.
//
// The engine itself never consumes these events; a session is strictly
// single-threaded. Applications drain Events between sessions and call
// MergeInto or LoadInto to pick up the new entries.
type Watcher struct {
	// Events receives one (coalesced) signal per observed change.
	Events chan struct{}

	path string
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher starts watching the given history file.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve history path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch history dir: %w", err)
	}

	w := &Watcher{
		Events: make(chan struct{}, 1),
		path:   abs,
		fsw:    fsw,
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// run forwards relevant filesystem events until Close.
func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.Events <- struct{}{}:
			default: // already pending, coalesce
			}
		case <-w.fsw.Errors:
			// Watch errors are not actionable here; the next explicit
			// load still sees the file.
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
