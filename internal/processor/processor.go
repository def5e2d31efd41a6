package processor

import (
	"context"
	"fmt"
	"time"
)

// Process runs the whole pipeline: read, align, chunk, balance, emit and
// optionally compile. Nothing is written when an earlier step fails.
func (p *implProcessor) Process(ctx context.Context) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Building deck: %s + %s -> %s",
		p.cfg.Paths.Native, p.cfg.Paths.Foreign, p.cfg.Paths.Output)

	// Step 1: Read and prepare turns
	turns, err := p.Prepare(ctx)
	if err != nil {
		return err
	}

	// Step 2: Write the document
	if err := p.emitter.Emit(ctx, turns, p.cfg.Paths.Output); err != nil {
		return fmt.Errorf("emit deck: %w", err)
	}

	// Step 3: Compile when enabled
	if p.cfg.Compile.Enabled {
		if err := p.compile(ctx, p.cfg.Paths.Output); err != nil {
			return fmt.Errorf("compile deck: %w", err)
		}
	}

	slides := 0
	for _, turn := range turns {
		slides += len(turn.Native)
	}
	p.logger.Info(ctx, "Deck built: %d turns, %d slides in %s", len(turns), slides, time.Since(startTime))

	return nil
}

// HandleChange rebuilds after an input change. The watcher logs a failed
// rebuild and keeps watching.
func (p *implProcessor) HandleChange(ctx context.Context, filePath string) error {
	p.logger.Info(ctx, "Input changed: %s", filePath)
	if err := p.Process(ctx); err != nil {
		return fmt.Errorf("rebuild after %s: %w", filePath, err)
	}
	return nil
}
