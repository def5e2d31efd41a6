package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/dramadeck/internal/logger"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

type implWatcher struct {
	tracked  map[string]bool
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// Start monitors the tracked files until ctx is done. Bursts of events are
// collapsed into one handler call after the debounce delay, and handler calls
// never overlap.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started, tracking %d files", len(w.tracked))

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&relevantOps == 0 || !w.isTracked(event.Name) {
				continue
			}
			w.logger.Debug(ctx, "Change detected: %s (%s)", event.Name, event.Op)

			changed = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.handler(ctx, changed); err != nil {
				w.logger.Error(ctx, "Failed to rebuild: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isTracked checks if the event path is one of the watched input files
func (w *implWatcher) isTracked(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return w.tracked[abs]
}
