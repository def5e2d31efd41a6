package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/dramadeck/internal/speaker"
	"github.com/nguyentantai21042004/dramadeck/internal/transcript"
	"github.com/nguyentantai21042004/dramadeck/pkg/lineio"
)

// loadDirectory reads the speaker name list
func (p *implProcessor) loadDirectory(ctx context.Context) (speaker.Directory, error) {
	dir, err := speaker.LoadFile(p.cfg.Paths.Names, speaker.Options{
		MatchNativeNames: p.cfg.Speakers.MatchNativeNames,
	})
	if err != nil {
		return nil, err
	}

	p.logger.Debug(ctx, "Loaded %d speakers from %s", len(dir.Names()), p.cfg.Paths.Names)
	return dir, nil
}

// readTranscript reads one transcript file and splits it into turns
func (p *implProcessor) readTranscript(ctx context.Context, path string, dir speaker.Directory) ([]transcript.Turn, error) {
	lines, err := lineio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	turns, err := transcript.Segment(lines, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p.logger.Debug(ctx, "Read %d lines, %d turns from %s", len(lines), len(turns), path)
	return turns, nil
}
