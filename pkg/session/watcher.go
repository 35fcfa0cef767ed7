package session

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/fsnotify.v1"
)

// defaultDebounce coalesces the event bursts editors produce when saving.
const defaultDebounce = 250 * time.Millisecond

// Watcher rebuilds a session's glossary when the document file changes on
// disk. The file's directory is watched rather than the file itself, so
// editors that replace the file on save keep triggering rebuilds.
type Watcher struct {
	session  *Session
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
}

// NewWatcher creates a watcher for the given document path. A zero
// debounce uses the default.
func NewWatcher(s *Session, path string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{session: s, path: path, debounce: debounce}
}

// Start begins watching. Rebuilds happen on the watch goroutine, so they
// never run concurrently with each other.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	return nil
}

// watchLoop handles file system events. Events for other files in the
// directory are ignored, and a debounce timer collapses save bursts into a
// single rebuild.
func (w *Watcher) watchLoop() {
	var pending <-chan time.Time

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			// Rebuild failures keep the previous snapshot; the session
			// reports them through its sink.
			_ = w.session.Rebuild()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Stop ends watching. A rebuild already in flight completes.
func (w *Watcher) Stop() {
	if w.stopChan != nil {
		close(w.stopChan)
	}
	if w.watcher != nil {
		w.watcher.Close()
	}
}
