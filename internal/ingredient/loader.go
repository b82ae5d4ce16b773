package ingredient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
	"github.com/osse101/Foodgram_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidCatalog = errors.New("invalid ingredient catalog")
	ErrDuplicateEntry = errors.New("duplicate ingredient")
)

// CatalogSchemaPath is the JSON schema every catalog file must satisfy
const CatalogSchemaPath = "configs/schemas/ingredients.schema.json"

// Loader reads the ingredient catalog file and syncs it into storage
type Loader interface {
	Load(path string) ([]domain.NewIngredient, error)
	Validate(items []domain.NewIngredient) error
	Sync(ctx context.Context, items []domain.NewIngredient) (*SyncResult, error)
}

// SyncResult reports how many catalog entries were new
type SyncResult struct {
	Inserted int
	Skipped  int
}

type loader struct {
	repo            repository.Ingredient
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader writing to repo
func NewLoader(repo repository.Ingredient) Loader {
	return &loader{
		repo:            repo,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads a catalog file, checking it against the schema before decoding
func (l *loader) Load(path string) ([]domain.NewIngredient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var items []domain.NewIngredient
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	return items, nil
}

// Validate rejects blank fields and entries repeated within the file
func (l *loader) Validate(items []domain.NewIngredient) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgCatalogEmpty)
	}

	seen := make(map[domain.NewIngredient]bool, len(items))
	for i := range items {
		item := &items[i]
		item.Name = strings.TrimSpace(item.Name)
		item.MeasurementUnit = strings.TrimSpace(item.MeasurementUnit)

		if item.Name == "" {
			return fmt.Errorf(ErrFmtEmptyField, ErrInvalidCatalog, i, "name")
		}
		if item.MeasurementUnit == "" {
			return fmt.Errorf(ErrFmtEmptyField, ErrInvalidCatalog, i, "measurement_unit")
		}
		if seen[*item] {
			return fmt.Errorf(ErrFmtDuplicateEntry, ErrDuplicateEntry, item.Name, item.MeasurementUnit)
		}
		seen[*item] = true
	}
	return nil
}

// Sync inserts the catalog. Entries already stored are skipped, so reruns are safe.
func (l *loader) Sync(ctx context.Context, items []domain.NewIngredient) (*SyncResult, error) {
	inserted, err := l.repo.InsertIngredients(ctx, items)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertFailed, err)
	}

	result := &SyncResult{Inserted: inserted, Skipped: len(items) - inserted}
	logger.FromContext(ctx).Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"skipped", result.Skipped)
	return result, nil
}
