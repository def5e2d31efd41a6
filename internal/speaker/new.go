package speaker

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/dramadeck/pkg/lineio"
)

type implDirectory struct {
	names   []Name
	markers map[string]Name
}

// Load builds a Directory from lines holding alternating native and foreign
// names. Blank lines are ignored.
func Load(lines []string, opts Options) (Directory, error) {
	var entries []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}

	if len(entries)%2 != 0 {
		return nil, fmt.Errorf("%w: %d entries, name %q has no foreign counterpart",
			ErrMalformedDirectory, len(entries), entries[len(entries)-1])
	}

	d := &implDirectory{
		names:   make([]Name, 0, len(entries)/2),
		markers: make(map[string]Name, len(entries)),
	}
	for i := 0; i < len(entries); i += 2 {
		name := Name{Native: entries[i], Foreign: entries[i+1]}
		d.names = append(d.names, name)
		d.addMarker(name.Foreign, name)
		if opts.MatchNativeNames {
			d.addMarker(name.Native, name)
		}
	}

	return d, nil
}

// LoadFile reads a directory file from disk.
func LoadFile(path string, opts Options) (Directory, error) {
	lines, err := lineio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read speaker directory: %w", err)
	}
	return Load(lines, opts)
}

// addMarker keeps the first speaker registered for a normalized form.
func (d *implDirectory) addMarker(form string, name Name) {
	key := normalize(form)
	if _, exists := d.markers[key]; !exists {
		d.markers[key] = name
	}
}
