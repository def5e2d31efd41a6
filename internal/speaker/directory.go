package speaker

import (
	"strings"

	"golang.org/x/text/cases"
)

func (d *implDirectory) IsSpeakerLine(line string) bool {
	_, ok := d.Resolve(line)
	return ok
}

func (d *implDirectory) Resolve(line string) (Name, bool) {
	key := normalize(line)
	if key == "" {
		return Name{}, false
	}
	name, ok := d.markers[key]
	return name, ok
}

func (d *implDirectory) Names() []Name {
	out := make([]Name, len(d.names))
	copy(out, d.names)
	return out
}

// normalize case-folds a marker line. A Caser is stateful, so each call gets
// its own.
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
