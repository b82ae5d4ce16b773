package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Foodgram_Go/internal/config"
)

func TestInitLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	ctx := context.Background()

	t.Run("defaults without configuration", func(t *testing.T) {
		initLogger(nil)
		assert.True(t, slog.Default().Enabled(ctx, slog.LevelInfo))
		assert.False(t, slog.Default().Enabled(ctx, slog.LevelDebug))
	})

	t.Run("configured level", func(t *testing.T) {
		initLogger(&config.Config{LogLevel: "debug", LogFormat: "json", ServiceName: "foodgram", Environment: "dev"})
		assert.True(t, slog.Default().Enabled(ctx, slog.LevelDebug))
	})

	t.Run("warn level filters info", func(t *testing.T) {
		initLogger(&config.Config{LogLevel: "warn", LogFormat: "text", Environment: "prod"})
		assert.False(t, slog.Default().Enabled(ctx, slog.LevelInfo))
		assert.True(t, slog.Default().Enabled(ctx, slog.LevelWarn))
	})
}
