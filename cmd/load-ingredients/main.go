// Command load-ingredients imports the ingredient catalog into the database.
// Entries that already exist are skipped, so it is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/database/postgres"
	"github.com/osse101/Foodgram_Go/internal/ingredient"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

func main() {
	file := flag.String("file", config.ConfigPathIngredients, "path to the ingredient catalog JSON")
	dryRun := flag.Bool("dry-run", false, "validate the catalog without touching the database")
	flag.Parse()

	_ = godotenv.Load()
	logger.InitLogger(logger.NewConfig(os.Getenv("LOG_LEVEL"), config.DefaultLogFormat, "load-ingredients", config.DefaultVersion, os.Getenv("ENVIRONMENT"), false))

	if err := run(context.Background(), *file, *dryRun); err != nil {
		slog.Error("Ingredient import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, dryRun bool) error {
	// Schema and content checks do not need a database
	checker := ingredient.NewLoader(nil)
	items, err := checker.Load(path)
	if err != nil {
		return err
	}
	if err := checker.Validate(items); err != nil {
		return err
	}
	slog.Info(ingredient.LogMsgCatalogLoaded, "file", path, "count", len(items))
	if dryRun {
		return nil
	}

	connString := (&config.Config{
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
	}).GetDBConnString()

	pool, err := database.NewPool(ctx, connString, database.PoolConfig{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := ingredient.NewLoader(postgres.NewIngredientRepository(pool)).Sync(ctx, items)
	if err != nil {
		return err
	}

	fmt.Printf("Inserted %d ingredients, skipped %d existing\n", result.Inserted, result.Skipped)
	return nil
}
