package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Gemini    GeminiConfig
	Catalog   CatalogConfig
	Assistant AssistantConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VOICEBITE_APP_ENV" required:"true"`
	Port         string `envconfig:"VOICEBITE_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"VOICEBITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VOICEBITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"VOICEBITE_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"VOICEBITE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VOICEBITE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VOICEBITE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VOICEBITE_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	SeedMenu bool `envconfig:"VOICEBITE_SEED_MENU" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VOICEBITE_REDIS_URL"`
	Address      string        `envconfig:"VOICEBITE_REDIS_ADDR"`
	Password     string        `envconfig:"VOICEBITE_REDIS_PASSWORD"`
	DB           int           `envconfig:"VOICEBITE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VOICEBITE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VOICEBITE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VOICEBITE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VOICEBITE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VOICEBITE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The
// voice rate limiter degrades to a no-op without one.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type GeminiConfig struct {
	APIKey  string        `envconfig:"VOICEBITE_GEMINI_API_KEY" required:"true"`
	Model   string        `envconfig:"VOICEBITE_GEMINI_MODEL" default:"gemini-3-flash-preview"`
	Timeout time.Duration `envconfig:"VOICEBITE_GEMINI_TIMEOUT" default:"30s"`
}

type CatalogConfig struct {
	SnapshotTTL time.Duration `envconfig:"VOICEBITE_CATALOG_SNAPSHOT_TTL" default:"60s"`
}

type AssistantConfig struct {
	SettlementDelay time.Duration `envconfig:"VOICEBITE_SETTLEMENT_DELAY" default:"2s"`
	SessionTTL      time.Duration `envconfig:"VOICEBITE_SESSION_TTL" default:"30m"`

	VoiceRateWindow time.Duration `envconfig:"VOICEBITE_VOICE_RATE_WINDOW" default:"1m"`
	VoiceRateLimit  int           `envconfig:"VOICEBITE_VOICE_RATE_LIMIT" default:"30"`
}
