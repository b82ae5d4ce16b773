package validation

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const ingredientSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"additionalProperties": false,
		"required": ["name", "measurement_unit"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"measurement_unit": {"type": "string", "minLength": 1}
		}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	schemaPath := writeFile(t, tmpDir, "ingredients.schema.json", ingredientSchema)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid catalog",
			data: `[{"name": "sugar", "measurement_unit": "g"}, {"name": "egg", "measurement_unit": "pcs"}]`,
		},
		{
			name: "empty catalog",
			data: `[]`,
		},
		{
			name:      "missing unit",
			data:      `[{"name": "sugar"}]`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "empty name",
			data:      `[{"name": "", "measurement_unit": "g"}]`,
			wantError: true,
			errorMsg:  "/0/name",
		},
		{
			name:      "unknown property",
			data:      `[{"name": "salt", "measurement_unit": "g", "id": 4}]`,
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name:      "not an array",
			data:      `{"name": "salt", "measurement_unit": "g"}`,
			wantError: true,
			errorMsg:  "type",
		},
		{
			name:      "invalid JSON",
			data:      `[{"name": }]`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, "data.json", tt.data)

			err := v.ValidateFile(dataPath, schemaPath)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	dataPath := writeFile(t, tmpDir, "data.json", `[]`)
	schemaPath := writeFile(t, tmpDir, "s.schema.json", ingredientSchema)

	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	if err == nil || !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}

	err = v.ValidateFile(filepath.Join(tmpDir, "missing.json"), schemaPath)
	if err == nil || !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("Expected 'failed to read data file' error, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchemasConcurrently(t *testing.T) {
	v := NewSchemaValidator().(*schemaValidator)
	schemaPath := writeFile(t, t.TempDir(), "s.schema.json", ingredientSchema)
	data := []byte(`[{"name": "milk", "measurement_unit": "ml"}]`)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := v.ValidateBytes(data, schemaPath); err != nil {
				t.Errorf("validation failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema, got %d", len(v.schemas))
	}
}

func TestSchemaValidator_ProjectCatalog(t *testing.T) {
	v := NewSchemaValidator()

	// Relative paths resolve from the module root
	if err := v.ValidateFile("../../data/ingredients.json", "configs/schemas/ingredients.schema.json"); err != nil {
		t.Fatalf("bundled catalog does not match its schema: %v", err)
	}
}
