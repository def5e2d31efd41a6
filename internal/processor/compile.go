package processor

import (
	"context"
	"fmt"
	"path/filepath"
)

// compile runs the LaTeX compiler on the written deck from the deck's
// directory, so auxiliary files land next to it
func (p *implProcessor) compile(ctx context.Context, texPath string) error {
	dir := filepath.Dir(texPath)
	args := append(append([]string(nil), p.cfg.Compile.Args...), filepath.Base(texPath))

	p.logger.Info(ctx, "Compiling deck with %s: %s", p.cfg.Compile.Binary, texPath)

	if _, err := p.executor.ExecuteInDir(ctx, dir, p.cfg.Compile.Binary, args...); err != nil {
		return fmt.Errorf("%s: %w", p.cfg.Compile.Binary, err)
	}

	p.logger.Info(ctx, "Deck compiled in %s", dir)
	return nil
}
