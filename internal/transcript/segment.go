// Package transcript splits raw transcript lines into speaker turns.
package transcript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTranscript is returned when a transcript does not open with a
// recognised speaker marker.
var ErrMalformedTranscript = errors.New("malformed transcript")

// SpeakerMatcher recognises speaker marker lines.
type SpeakerMatcher interface {
	IsSpeakerLine(line string) bool
}

// Turn is the raw text spoken after one marker line, blank lines removed.
type Turn struct {
	Marker string
	Lines  []string
}

// Segment groups lines into turns. Every line that matches is the marker of a
// new turn; all other non-blank lines belong to the turn opened by the nearest
// preceding marker. Leading blank lines are skipped, and the first remaining
// line must be a marker.
func Segment(lines []string, matcher SpeakerMatcher) ([]Turn, error) {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return nil, fmt.Errorf("%w: no speaker marker found", ErrMalformedTranscript)
	}
	if !matcher.IsSpeakerLine(lines[start]) {
		return nil, fmt.Errorf("%w: line %d %q is not a speaker marker",
			ErrMalformedTranscript, start+1, lines[start])
	}

	var turns []Turn
	current := Turn{Marker: strings.TrimSpace(lines[start])}
	for _, line := range lines[start+1:] {
		if matcher.IsSpeakerLine(line) {
			turns = append(turns, current)
			current = Turn{Marker: strings.TrimSpace(line)}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	turns = append(turns, current)

	return turns, nil
}
