package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"JWT_SECRET",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if secret := os.Getenv("JWT_SECRET"); secret == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	} else if len(secret) < 32 {
		warnings = append(warnings, "JWT_SECRET is shorter than 32 characters")
	}

	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		if u, err := url.Parse(base); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			warnings = append(warnings, "PUBLIC_BASE_URL is not an absolute http(s) URL - short links will be broken")
		}
	}

	if tag := os.Getenv("SHOPPING_LIST_LANGUAGE"); tag != "" {
		if _, err := language.Parse(tag); err != nil {
			warnings = append(warnings, fmt.Sprintf("SHOPPING_LIST_LANGUAGE %q is not a valid language tag - falling back to default collation", tag))
		}
	}

	if env := os.Getenv("ENVIRONMENT"); env == "prod" || env == "production" {
		origins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if origins == "" || strings.Contains(origins, "*") {
			warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows any origin in production")
		}
	}

	return warnings, nil
}
