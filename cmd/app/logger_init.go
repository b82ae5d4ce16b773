package main

import (
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// initLogger is the stdout-only fallback used when the session log file cannot
// be opened. A nil cfg means configuration failed to load.
func initLogger(cfg *config.Config) {
	loggerConfig := logger.DefaultConfig()
	if cfg != nil {
		loggerConfig = logger.NewConfig(
			cfg.LogLevel,
			cfg.LogFormat,
			cfg.ServiceName,
			cfg.Version,
			cfg.Environment,
			cfg.IsDevelopment(),
		)
	}

	logger.InitLogger(loggerConfig)
}
