package common

import (
	"fmt"

	"github.com/ezhulati/choose-my-power-sub003/internal/config"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
)

// NewCommandDeps loads configuration and builds the logger. This
// consolidates the initialization every command performs before its own
// wiring.
func NewCommandDeps(cfgFile string, debug bool) (CommandDeps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	level := logger.Level(cfg.Logger.Level)
	if debug {
		level = logger.DebugLevel
	}

	log, err := logger.New(&logger.Config{
		Level:       level,
		Development: cfg.Logger.Format == "console",
		Encoding:    cfg.Logger.Format,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
