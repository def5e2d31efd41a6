// Package dialogue pairs the turns of two transcripts and cuts them into
// slide-sized chunks of equal count per language.
package dialogue

import (
	"errors"

	"github.com/nguyentantai21042004/dramadeck/internal/speaker"
)

var (
	// ErrTranscriptLengthMismatch is returned when the transcripts hold a
	// different number of turns.
	ErrTranscriptLengthMismatch = errors.New("transcript length mismatch")
	// ErrEmptyTurn is returned when balancing a turn with no chunks on one side.
	ErrEmptyTurn = errors.New("empty turn")
	// ErrUnknownSpeaker is returned when a marker does not resolve to a speaker.
	ErrUnknownSpeaker = errors.New("unknown speaker")
	// ErrSpeakerMismatch is returned in strict mode when paired markers name
	// different speakers.
	ErrSpeakerMismatch = errors.New("speaker mismatch")
)

// Turn is one speaker's contribution at one position of both transcripts.
// Native and Foreign hold raw paragraph lines after alignment and chunks after
// chunking; they have equal length once balanced.
type Turn struct {
	Speaker speaker.Name
	Native  []string
	Foreign []string
}

// Balanced reports whether both languages have the same number of entries.
func (t Turn) Balanced() bool {
	return len(t.Native) == len(t.Foreign)
}

func (t Turn) clone() Turn {
	return Turn{
		Speaker: t.Speaker,
		Native:  append([]string(nil), t.Native...),
		Foreign: append([]string(nil), t.Foreign...),
	}
}
