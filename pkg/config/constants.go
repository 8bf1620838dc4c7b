package config

// EnvPrefix is empty because every envconfig tag carries the full
// VOICEBITE_ prefix explicitly.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared between Load and tests.
const (
	EnvAppEnv          = "VOICEBITE_APP_ENV"
	EnvPort            = "VOICEBITE_APP_PORT"
	EnvLogLevel        = "VOICEBITE_LOG_LEVEL"
	EnvDBDSN           = "VOICEBITE_DB_DSN"
	EnvRedisURL        = "VOICEBITE_REDIS_URL"
	EnvGeminiAPIKey    = "VOICEBITE_GEMINI_API_KEY"
	EnvGeminiModel     = "VOICEBITE_GEMINI_MODEL"
	EnvSnapshotTTL     = "VOICEBITE_CATALOG_SNAPSHOT_TTL"
	EnvSettlementDelay = "VOICEBITE_SETTLEMENT_DELAY"
	EnvSeedMenu        = "VOICEBITE_SEED_MENU"
)
