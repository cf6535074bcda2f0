package main

import (
	"log/slog"
	"strings"

	"laneline/internal/config"
	"laneline/internal/logging"
)

// commandContext lazily resolves configuration and logging once per
// invocation and shares them across subcommands.
type commandContext struct {
	configFlag *string

	cfg *config.Config
	log *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensure() (*config.Config, *slog.Logger, error) {
	if c.cfg != nil {
		return c.cfg, c.log, nil
	}

	path := ""
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	c.cfg = cfg
	c.log = log
	return cfg, log, nil
}
