package processor

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

// Prepare reads the directory and both transcripts, aligns them and returns
// chunked, balanced turns in transcript order
func (p *implProcessor) Prepare(ctx context.Context) ([]dialogue.Turn, error) {
	dir, err := p.loadDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load speakers: %w", err)
	}

	native, err := p.readTranscript(ctx, p.cfg.Paths.Native, dir)
	if err != nil {
		return nil, fmt.Errorf("read native transcript: %w", err)
	}
	foreign, err := p.readTranscript(ctx, p.cfg.Paths.Foreign, dir)
	if err != nil {
		return nil, fmt.Errorf("read foreign transcript: %w", err)
	}

	aligned, err := dialogue.Align(native, foreign, dir, dialogue.AlignOptions{
		StrictSpeakers: p.cfg.Speakers.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("align transcripts: %w", err)
	}

	turns, err := p.chunkAndBalance(ctx, aligned)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Prepared %d turns", len(turns))
	return turns, nil
}

// chunkAndBalance processes turns independently, at most
// performance.max_concurrent at a time, keeping their order
func (p *implProcessor) chunkAndBalance(ctx context.Context, aligned []dialogue.Turn) ([]dialogue.Turn, error) {
	nativeRule := dialogue.ChunkRule{
		MaxChars: p.cfg.Chunking.Native.MaxChars,
		Terminal: p.cfg.Chunking.Native.Terminal,
	}
	foreignRule := dialogue.ChunkRule{
		MaxChars: p.cfg.Chunking.Foreign.MaxChars,
		Terminal: p.cfg.Chunking.Foreign.Terminal,
	}

	turns := make([]dialogue.Turn, len(aligned))
	errs := make([]error, len(aligned))
	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup

	for i := range aligned {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.release()

			balanced, err := dialogue.Balance(aligned[i].Chunked(nativeRule, foreignRule))
			if err != nil {
				errs[i] = fmt.Errorf("turn %d: %w", i+1, err)
				return
			}
			turns[i] = balanced
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("balance turns: %w", err)
		}
	}
	return turns, nil
}
