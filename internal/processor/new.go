package processor

import (
	"github.com/nguyentantai21042004/dramadeck/internal/config"
	"github.com/nguyentantai21042004/dramadeck/internal/emitter"
	"github.com/nguyentantai21042004/dramadeck/internal/logger"
	"github.com/nguyentantai21042004/dramadeck/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	emitter  emitter.Emitter
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, emit emitter.Emitter, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		emitter:  emit,
		logger:   log,
	}
}
