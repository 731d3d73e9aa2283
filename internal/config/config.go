package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database: a file path opens SQLite, a postgres:// URL opens PostgreSQL.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis backs per-session UI state; empty keeps it in memory.
	RedisURL          string `mapstructure:"REDIS_URL"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Auth (single operator)
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours   int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	JWTRefreshHours      int    `mapstructure:"JWT_REFRESH_HOURS"`
	OperatorUsername     string `mapstructure:"OPERATOR_USERNAME"`
	OperatorPasswordHash string `mapstructure:"OPERATOR_PASSWORD_HASH"`

	// Logging / monitoring
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFile   string `mapstructure:"LOG_FILE"`
	SentryDSN string `mapstructure:"SENTRY_DSN"`

	// Uploads
	MaxPDFSizeMB int `mapstructure:"MAX_PDF_SIZE_MB"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Sensible defaults for local use
	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_URL", "gestao_obras.db")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("SESSION_TTL_MINUTES", 480)
	v.SetDefault("JWT_SECRET", "troque-este-segredo")
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("JWT_REFRESH_HOURS", 24)
	v.SetDefault("OPERATOR_USERNAME", "admin")
	v.SetDefault("OPERATOR_PASSWORD_HASH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("SENTRY_DSN", "")
	v.SetDefault("MAX_PDF_SIZE_MB", 20)

	// Optional .env file for local development; does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool { return c.Env == "production" }
