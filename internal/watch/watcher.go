// Package watch notifies when the project descriptor changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/rslenv/internal/logfields"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 300 * time.Millisecond

// DescriptorWatcher monitors a single file and invokes a callback after
// changes settle.
type DescriptorWatcher struct {
	path     string
	onChange func(context.Context)
	debounce time.Duration
	watcher  *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewDescriptorWatcher creates a watcher for path. onChange runs on its own
// goroutine, never concurrently with itself.
func NewDescriptorWatcher(path string, debounce time.Duration, onChange func(context.Context)) (*DescriptorWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve descriptor path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &DescriptorWatcher{
		path:     absPath,
		onChange: onChange,
		debounce: debounce,
		watcher:  w,
	}, nil
}

// Path returns the absolute path being watched.
func (dw *DescriptorWatcher) Path() string { return dw.path }

// Run watches until ctx is cancelled or the underlying watcher fails.
func (dw *DescriptorWatcher) Run(ctx context.Context) error {
	defer dw.close()

	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(dw.path)
	if err := dw.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	slog.Info("Watching descriptor", logfields.Descriptor(dw.path))

	var runMu sync.Mutex
	fire := func() {
		runMu.Lock()
		defer runMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		dw.onChange(ctx)
	}

	name := filepath.Base(dw.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Descriptor change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				dw.schedule(fire)
			case event.Has(fsnotify.Remove):
				slog.Warn("Descriptor removed", logfields.Path(event.Name))
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("descriptor watcher: %w", err)
		}
	}
}

func (dw *DescriptorWatcher) schedule(fire func()) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.closed {
		return
	}
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(dw.debounce, fire)
}

func (dw *DescriptorWatcher) close() {
	dw.mu.Lock()
	dw.closed = true
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.mu.Unlock()

	if err := dw.watcher.Close(); err != nil {
		slog.Error("Error closing file watcher", logfields.Error(err))
	}
}
