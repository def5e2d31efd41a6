package speaker

import "errors"

// ErrMalformedDirectory is returned when the directory does not consist of
// complete native/foreign name pairs.
var ErrMalformedDirectory = errors.New("malformed speaker directory")

// Name is one speaker as written in each language.
type Name struct {
	Native  string
	Foreign string
}

// Directory recognises and resolves speaker marker lines.
type Directory interface {
	// IsSpeakerLine reports whether line names a known speaker.
	IsSpeakerLine(line string) bool
	// Resolve returns the speaker a marker line refers to.
	Resolve(line string) (Name, bool)
	// Names lists the speakers in directory order.
	Names() []Name
}

// Options controls which name forms count as speaker markers.
type Options struct {
	// MatchNativeNames also recognises native-language names as markers.
	MatchNativeNames bool
}
