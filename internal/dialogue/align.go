package dialogue

import (
	"fmt"

	"github.com/nguyentantai21042004/dramadeck/internal/speaker"
	"github.com/nguyentantai21042004/dramadeck/internal/transcript"
)

// Resolver maps a marker line to the speaker it names.
type Resolver interface {
	Resolve(line string) (speaker.Name, bool)
}

// AlignOptions tunes Align.
type AlignOptions struct {
	// StrictSpeakers requires paired markers to resolve to the same speaker.
	StrictSpeakers bool
}

// Align pairs native turn i with foreign turn i. Speakers are not matched by
// name: the transcripts are expected to be in sync already. The header of each
// turn takes the native name from the native marker and the foreign name from
// the foreign marker.
func Align(native, foreign []transcript.Turn, resolver Resolver, opts AlignOptions) ([]Turn, error) {
	if len(native) != len(foreign) {
		return nil, fmt.Errorf("%w: native has %d turns, foreign has %d",
			ErrTranscriptLengthMismatch, len(native), len(foreign))
	}

	turns := make([]Turn, 0, len(native))
	for i := range native {
		nativeName, ok := resolver.Resolve(native[i].Marker)
		if !ok {
			return nil, fmt.Errorf("%w: native turn %d marker %q", ErrUnknownSpeaker, i+1, native[i].Marker)
		}
		foreignName, ok := resolver.Resolve(foreign[i].Marker)
		if !ok {
			return nil, fmt.Errorf("%w: foreign turn %d marker %q", ErrUnknownSpeaker, i+1, foreign[i].Marker)
		}
		if opts.StrictSpeakers && nativeName != foreignName {
			return nil, fmt.Errorf("%w: turn %d pairs %q with %q",
				ErrSpeakerMismatch, i+1, native[i].Marker, foreign[i].Marker)
		}

		turns = append(turns, Turn{
			Speaker: speaker.Name{Native: nativeName.Native, Foreign: foreignName.Foreign},
			Native:  append([]string(nil), native[i].Lines...),
			Foreign: append([]string(nil), foreign[i].Lines...),
		})
	}

	return turns, nil
}
