package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/database/postgres"
	"github.com/osse101/Foodgram_Go/internal/ingredient"
	"github.com/osse101/Foodgram_Go/migrations"
)

// Drops and recreates the development database, then migrates it and
// optionally reloads the ingredient catalog.
func main() {
	catalog := flag.String("ingredients", config.ConfigPathIngredients, "ingredient catalog to load after migrating (empty to skip)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if env := os.Getenv("ENVIRONMENT"); env == "prod" || env == "production" {
		log.Fatalf("Refusing to reset a %s database", env)
	}

	dbName := os.Getenv("DB_NAME")
	ctx := context.Background()

	// Connect to the maintenance database to manage the target one
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
	)

	serverPool, err := database.NewPool(ctx, serverConnString, database.PoolConfig{MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err = serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err = serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	serverPool.Close()

	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		dbName,
	)
	pool, err := database.NewPool(ctx, targetConnString, database.PoolConfig{MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	if *catalog != "" {
		loader := ingredient.NewLoader(postgres.NewIngredientRepository(pool))
		items, err := loader.Load(*catalog)
		if err != nil {
			log.Fatalf("Failed to load ingredients: %v", err)
		}
		if err := loader.Validate(items); err != nil {
			log.Fatalf("Invalid ingredient catalog: %v", err)
		}
		result, err := loader.Sync(ctx, items)
		if err != nil {
			log.Fatalf("Failed to import ingredients: %v", err)
		}
		log.Printf("Loaded %d ingredients\n", result.Inserted)
	}

	log.Println("Database reset complete")
}
