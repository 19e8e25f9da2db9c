package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"plagcheck/internal/config"
	"plagcheck/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool
	stderr     io.Writer

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verbose *bool, stderr io.Writer) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
		stderr:     stderr,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if c.verbose != nil && *c.verbose {
			cfg.Logging.Level = "debug"
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, c.stderr)
	})
	return c.logger, c.loggerErr
}
