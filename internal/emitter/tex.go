package emitter

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

// Emit renders the deck and writes it to outputPath
func (e *implTex) Emit(ctx context.Context, turns []dialogue.Turn, outputPath string) error {
	doc, err := e.template.Render(turns)
	if err != nil {
		return fmt.Errorf("render deck: %w", err)
	}

	err = replaceFile(ctx, outputPath, func(tmpPath string) error {
		if err := os.WriteFile(tmpPath, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.logger.Info(ctx, "Deck written: %s (%d bytes)", outputPath, len(doc))
	return nil
}
