package app

import (
	"github.com/burgerspot/rewards/internal/config"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
