package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/dramadeck/internal/logger"
)

// New creates a Watcher for the given files. Their parent directories are
// watched so that editors replacing a file by rename are still noticed.
func New(files []string, handler EventHandler, log logger.Logger, debounce time.Duration) (Watcher, error) {
	tracked := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", f, err)
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("add watch path: %w", err)
		}
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &implWatcher{
		tracked:  tracked,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		debounce: debounce,
	}, nil
}
