package emitter

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

var (
	// ErrUnbalancedTurn is returned when a turn reaches emission with a
	// different number of chunks per language.
	ErrUnbalancedTurn = errors.New("unbalanced turn")
	// ErrUnknownFormat is returned for an output format without a backend.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Emitter renders balanced turns, one unit per chunk pair, into a document at
// outputPath. The file is replaced only when rendering succeeds.
type Emitter interface {
	Emit(ctx context.Context, turns []dialogue.Turn, outputPath string) error
}

// unitFunc receives one document unit: speaker headers and the chunk pair.
type unitFunc func(nativeName, foreignName, nativeChunk, foreignChunk string) error

// eachUnit walks turns in order and chunk pairs in order within each turn.
func eachUnit(turns []dialogue.Turn, fn unitFunc) error {
	for i, turn := range turns {
		if !turn.Balanced() {
			return errUnbalanced(i, turn)
		}
		for j := range turn.Native {
			if err := fn(turn.Speaker.Native, turn.Speaker.Foreign, turn.Native[j], turn.Foreign[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
