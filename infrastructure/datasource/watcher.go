package datasource

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stayview/booking-insights-api/pkg/log"
)

// Watcher notifies a handler when the dataset file changes on disk, so the
// repository can drop its cached table. Only file-backed sources are
// watchable; the database source relies on the scheduled refresh instead.
//
// The parent directory is watched rather than the file itself, because many
// editors and export tools replace the file on save instead of writing in
// place.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	lastMod time.Time
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		path:    abs,
		watcher: watcher,
	}, nil
}

// Watch blocks delivering change notifications until the context is done or
// the underlying watcher fails. Rapid successive events for the same write
// are collapsed through the file's modification time.
func (w *Watcher) Watch(ctx context.Context, handler func()) error {
	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}

			w.mu.Lock()
			if info.ModTime().After(w.lastMod) {
				w.lastMod = info.ModTime()
				log.L.WithField("source", w.path).Info("Dataset file changed, refreshing cache")
				go handler()
			}
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
