package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/Foodgram_Go/docs"
	"github.com/osse101/Foodgram_Go/internal/bootstrap"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/server"
	"github.com/osse101/Foodgram_Go/migrations"
)

// @title Foodgram API
// @version 1.0
// @description Recipe sharing: recipes, favorites, shopping cart and author subscriptions.
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Send "Token <auth_token>"
func main() {
	cfg, err := config.Load()
	if err != nil {
		initLogger(nil)
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initLogger(cfg)
		slog.Warn("File logging disabled", "error", err)
	} else {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool, migrations.FS); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(cfg, repos)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	srv := server.NewServer(bootstrap.ServerConfig(cfg), dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
