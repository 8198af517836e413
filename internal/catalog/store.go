package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/cardshow/internal/actions"
)

// Store holds the current catalog and swaps it on reload.
type Store struct {
	mu      sync.RWMutex
	current *Catalog
	handles []actions.Handle

	loader   *Loader
	registry *actions.Registry
}

// NewStore loads the catalog once and binds its actions. It fails when the
// initial catalog is invalid.
func NewStore(loader *Loader, registry *actions.Registry) (*Store, error) {
	s := &Store{loader: loader, registry: registry}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog returns the current catalog. Callers must not modify it.
func (s *Store) Catalog() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload reads the catalog again. On error the previous catalog stays active.
func (s *Store) Reload() error {
	next, err := s.loader.Load()
	if err != nil {
		return err
	}
	handles := Bind(next, s.registry)

	s.mu.Lock()
	old := s.handles
	s.current, s.handles = next, handles
	s.mu.Unlock()

	Unbind(old, s.registry)
	slog.Info("Catalog loaded", "components", len(next.Entries), "actions", len(handles))
	return nil
}

// Watch reloads the catalog whenever the catalog file in dir changes. It
// returns once the watcher is running; the watcher stops when ctx is done.
func (s *Store) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory rather than the file.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go s.watch(ctx, watcher)
	slog.Info("Watching catalog for changes", "dir", dir)
	return nil
}

func (s *Store) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		slog.Debug("Catalog watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != FileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("Catalog file event", "event", event.Op.String(), "path", event.Name)
			if err := s.Reload(); err != nil {
				slog.Error("Catalog reload failed, keeping previous version", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Catalog watcher error", "error", err)
		}
	}
}
