package emitter

import (
	"fmt"

	"github.com/nguyentantai21042004/dramadeck/internal/config"
	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
	"github.com/nguyentantai21042004/dramadeck/internal/logger"
)

type implTex struct {
	template Template
	logger   logger.Logger
}

type implDocx struct {
	logger logger.Logger
}

// New creates the Emitter for the configured output format
func New(cfg config.OutputConfig, log logger.Logger) (Emitter, error) {
	switch cfg.Format {
	case config.FormatBeamer, "":
		return &implTex{
			template: BeamerTemplate().Override(cfg.Template),
			logger:   log,
		}, nil
	case config.FormatDocx:
		return &implDocx{logger: log}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

func errUnbalanced(index int, turn dialogue.Turn) error {
	return fmt.Errorf("%w: turn %d (%s/%s) has %d native and %d foreign chunks",
		ErrUnbalancedTurn, index+1, turn.Speaker.Native, turn.Speaker.Foreign, len(turn.Native), len(turn.Foreign))
}
