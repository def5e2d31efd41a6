package dialogue

import (
	"fmt"
	"strings"
)

// Balance returns a copy of a chunked turn in which the longer language has
// its surplus tail chunks merged into its last kept chunk, so both languages
// have as many chunks as the shorter one. Chunks are concatenated without a
// separator.
func Balance(t Turn) (Turn, error) {
	out := t.clone()
	if out.Balanced() {
		return out, nil
	}

	if len(out.Native) == 0 || len(out.Foreign) == 0 {
		return Turn{}, fmt.Errorf("%w: speaker %s/%s has %d native and %d foreign chunks",
			ErrEmptyTurn, t.Speaker.Native, t.Speaker.Foreign, len(t.Native), len(t.Foreign))
	}

	if len(out.Native) > len(out.Foreign) {
		out.Native = mergeTail(out.Native, len(out.Foreign))
	} else {
		out.Foreign = mergeTail(out.Foreign, len(out.Native))
	}
	return out, nil
}

func mergeTail(chunks []string, n int) []string {
	merged := strings.Join(chunks[n-1:], "")
	return append(chunks[:n-1], merged)
}
