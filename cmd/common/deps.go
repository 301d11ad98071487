// Package common provides shared dependency wiring for command
// implementations.
package common

import (
	"github.com/ezhulati/choose-my-power-sub003/internal/config"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
)

// CommandDeps holds the dependencies every command needs.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}

	if d.Config == nil {
		return ErrConfigRequired
	}

	return nil
}
