package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nguyentantai21042004/dramadeck/internal/config"
	"github.com/nguyentantai21042004/dramadeck/internal/emitter"
	"github.com/nguyentantai21042004/dramadeck/internal/logger"
	"github.com/nguyentantai21042004/dramadeck/internal/processor"
	"github.com/nguyentantai21042004/dramadeck/pkg/executor"
)

const defaultConfigPath = "config.yaml"

type commandContext struct {
	configFlag *string
	levelFlag  *string

	cfg *config.Config
	log logger.Logger
}

func newCommandContext(configFlag, levelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, levelFlag: levelFlag}
}

// ensureConfig loads the configuration once. Without --config, config.yaml is
// used when it exists and the built-in defaults otherwise.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	path := *c.configFlag
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", defaultConfigPath, err)
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *c.levelFlag != "" {
		cfg.Logging.Level = *c.levelFlag
	}

	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) logger() logger.Logger {
	if c.log == nil {
		level := "info"
		if c.cfg != nil {
			level = c.cfg.Logging.Level
		}
		c.log = logger.New(level)
	}
	return c.log
}

// newProcessor wires the pipeline for the loaded configuration
func (c *commandContext) newProcessor() (*config.Config, processor.Processor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	log := c.logger()

	emit, err := emitter.New(cfg.Output, log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, processor.New(cfg, executor.New(), emit, log), nil
}
