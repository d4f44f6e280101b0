package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"mediasort/internal/config"
	"mediasort/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logFormatFlag *string
	logLevelFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logFormatFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logFormatFlag: logFormatFlag,
		logLevelFlag:  logLevelFlag,
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
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logFormat(cfg *config.Config) string {
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		return strings.TrimSpace(*c.logFormatFlag)
	}
	return cfg.Logging.Format
}

func (c *commandContext) logLevel(cfg *config.Config) string {
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		return strings.TrimSpace(*c.logLevelFlag)
	}
	return cfg.Logging.Level
}

// newLogger builds the run logger: structured lines go to stderr and, when a
// log directory is configured, to mediasort.log inside it. Stdout stays
// reserved for move reports.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	outputs := []string{"stderr"}
	if cfg.Paths.LogDir != "" {
		outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "mediasort.log"))
	}
	return logging.New(logging.Options{
		Level:       c.logLevel(cfg),
		Format:      c.logFormat(cfg),
		OutputPaths: outputs,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
