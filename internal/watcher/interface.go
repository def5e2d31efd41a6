package watcher

import "context"

// Watcher defines the interface for input file monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the path of a changed input file
type EventHandler func(ctx context.Context, filePath string) error
