package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/muse-labs/trackboard/internal/logging"
)

// watchDebounce coalesces the burst of events an editor or exporter emits
// for a single save.
const watchDebounce = 500 * time.Millisecond

// Watcher invalidates a Store entry when the source file changes on disk
// and signals listeners on C. Exporters replace the file atomically, so
// the parent directory is watched rather than the file itself.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	store   *Store
	path    string
	dir     string
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool

	// C receives one signal per (debounced) source change.
	C chan struct{}
}

// NewWatcher creates a watcher for the source file at path.
func NewWatcher(path string, store *Store) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: fsw,
		store:   store,
		path:    abs,
		dir:     filepath.Dir(abs),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		C:       make(chan struct{}, 1),
	}, nil
}

// Start begins watching. Non-blocking; events are handled in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	// The event loop only starts after Add succeeds; a failed Start must
	// leave the watcher stopped so Stop does not wait on a loop that
	// never ran.
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return err
	}
	w.running = true
	w.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("component", "catalog").
		Str("path", w.path).
		Msg("watching source file for changes")

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	log := logging.FromContext(ctx)
	var pending *time.Timer
	var pendingCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-pendingCh:
			pendingCh = nil
			w.fire(log)
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(watchDebounce)
			} else {
				pending.Reset(watchDebounce)
			}
			pendingCh = pending.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().
				Str("component", "catalog").
				Err(err).
				Msg("source watcher error")
		}
	}
}

// relevant filters directory events down to mutations of the source file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

// fire invalidates the cache entry and signals listeners without blocking.
func (w *Watcher) fire(log *zerolog.Logger) {
	w.store.Invalidate(w.path)
	log.Debug().
		Str("component", "catalog").
		Str("path", w.path).
		Msg("source file changed, cache entry invalidated")

	select {
	case w.C <- struct{}{}:
	default:
	}
}
