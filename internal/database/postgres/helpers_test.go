package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/domain"
)

var (
	testDBConnString  string
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		ctx := context.Background()
		testDBConnString, terminate = setupContainer(ctx)
		if testDBConnString != "" {
			pool, err := database.NewPool(ctx, testDBConnString, database.PoolConfig{MaxConns: 10})
			if err != nil {
				fmt.Printf("WARNING: Failed to connect to test database: %v\n", err)
			} else {
				testPool = pool
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// setupTestDB skips unless a database is available, applies migrations once and
// truncates every table so each test starts clean.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	ensureMigrations(t)

	_, err := testPool.Exec(context.Background(), `
		TRUNCATE subscriptions, shopping_cart, favorite_recipes, recipe_ingredients,
		         recipes, ingredients, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return testPool
}

// ensureMigrations applies migrations once for all tests in the package
func ensureMigrations(t *testing.T) {
	migrationsMux.Lock()
	defer migrationsMux.Unlock()

	if migrationsApplied {
		return
	}

	ctx := context.Background()
	if err := applyMigrations(ctx, t, testPool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	migrationsApplied = true
}

// applyMigrations runs the Up section of every migration file in order
func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		// Strip goose markers and the Down section
		contentStr := strings.Replace(string(content), "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}

		t.Logf("Executing: %s", filepath.Base(file))
		if _, err := pool.Exec(ctx, strings.TrimSpace(contentStr)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// ---- Fixtures ----

func createTestUser(t *testing.T, repo *UserRepository, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func seedIngredients(t *testing.T, pool *pgxpool.Pool, items ...domain.NewIngredient) map[string]int64 {
	t.Helper()
	repo := &IngredientRepository{db: pool}
	_, err := repo.InsertIngredients(context.Background(), items)
	require.NoError(t, err)

	all, err := repo.SearchIngredients(context.Background(), "")
	require.NoError(t, err)

	ids := make(map[string]int64, len(all))
	for _, ing := range all {
		ids[ing.Name+"/"+ing.MeasurementUnit] = ing.ID
	}
	return ids
}

func createTestRecipe(t *testing.T, repo *RecipeRepository, authorID int64, name string, lines ...domain.IngredientLine) *domain.Recipe {
	t.Helper()
	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "recipes/images/" + name + ".jpg",
		Text:        "Mix and serve",
		CookingTime: 10,
	}
	require.NoError(t, repo.CreateRecipe(context.Background(), recipe, lines))
	return recipe
}
