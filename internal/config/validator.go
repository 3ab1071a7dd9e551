package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// exampleAPIKey is the placeholder shipped in .env.example
const exampleAPIKey = "generate_with_openssl_rand_hex_32"

// ValidateEnv checks ENV_SCHEMA_VERSION when present. Every other variable has a default.
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvSchemaVersion)
	if !ok {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports settings that work but look wrong
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvAPIKey) == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	env := strings.ToLower(os.Getenv(EnvEnvironment))
	if (env == "prod" || env == "production") && os.Getenv(EnvAPIKey) == "" {
		warnings = append(warnings, "API_KEY is not set in production - session and estimate routes are open")
	}

	return warnings, nil
}
