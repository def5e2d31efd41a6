package processor

import (
	"context"

	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

// Processor turns the configured transcripts into a deck
type Processor interface {
	// Process builds the deck and writes it, compiling it when configured.
	Process(ctx context.Context) error
	// Prepare reads the inputs and returns the balanced turns without writing.
	Prepare(ctx context.Context) ([]dialogue.Turn, error)
	// HandleChange rebuilds the deck after filePath changed.
	HandleChange(ctx context.Context, filePath string) error
}
