package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionTTL is how long an idle estimator session is kept
const DefaultSessionTTL = 2 * time.Hour

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string
	LogSource   bool

	// SwaggerEnabled mounts /swagger/*
	SwaggerEnabled bool

	// APIKey is optional; when set, mutating API routes require it
	APIKey         string
	TrustedProxies []string

	CropsPath         string
	ProbabilitiesPath string

	SessionCacheSize int
	SessionTTL       time.Duration
	MaxBodyBytes     int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:            getEnv(EnvLogDir, DefaultLogDir),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		LogSource:         getEnvAsBool(EnvLogSource, false),
		SwaggerEnabled:    getEnvAsBool(EnvSwaggerEnabled, true),
		APIKey:            getEnv(EnvAPIKey, ""),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),
		CropsPath:         getEnv(EnvCropsPath, ConfigPathCrops),
		ProbabilitiesPath: getEnv(EnvProbabilitiesPath, ConfigPathProbabilities),
		SessionCacheSize:  getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:        getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		MaxBodyBytes:      int64(getEnvAsInt(EnvMaxBodyBytes, DefaultMaxBodyBytes)),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SessionCacheSize <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvSessionCacheSize, cfg.SessionCacheSize)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", EnvSessionTTL, cfg.SessionTTL)
	}

	return cfg, nil
}

// AuthEnabled reports whether API key checks are on
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration such as "90m", falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsBool parses a boolean such as "true" or "1"
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
