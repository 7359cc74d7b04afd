package scene

import (
	"errors"

	"github.com/fsnotify/fsnotify"

	"github.com/doytsujin/zalgebra/core"
)

// ReloadFunc is invoked with the changed path after a write event.
type ReloadFunc func(path string)

// Watcher watches a scene description file and reports writes so the
// caller can reload it.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	onReload ReloadFunc

	done     chan struct{}
	isClosed bool
}

func NewWatcher(onReload ReloadFunc) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsnotify: fsWatch,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts watching the named file or directory (non-recursively).
func (w *Watcher) Watch(name string) error {
	if w.isClosed {
		return errors.New("watcher instance already closed")
	}
	return w.fsnotify.Add(name)
}

// Start launches the event dispatch loop.
func (w *Watcher) Start() {
	go w.start()
}

func (w *Watcher) start() {
	for {
		select {
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				core.LogDebug("scene file changed: %s", event.Name)
				w.onReload(event.Name)
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the dispatch loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
