package config

// Reference data file paths
const (
	ConfigPathCrops         = "configs/data/crops.json"
	ConfigPathProbabilities = "configs/data/probabilities.json"
)

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvLogSource         = "LOG_SOURCE"
	EnvSwaggerEnabled    = "SWAGGER_ENABLED"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvCropsPath         = "CROPS_PATH"
	EnvProbabilitiesPath = "PROBABILITIES_PATH"
	EnvSessionCacheSize  = "SESSION_CACHE_SIZE"
	EnvSessionTTL        = "SESSION_TTL"
	EnvMaxBodyBytes      = "MAX_BODY_BYTES"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "crop-calc"
	DefaultVersion          = "dev"
	DefaultSessionCacheSize = 1024
	DefaultMaxBodyBytes     = 1 << 20
)
