package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Auth and billing backend modes. Static mode serves local development and
// tests; production deployments point at the shared Redis and Postgres.
const (
	ModeStatic   = "static"
	ModeRedis    = "redis"
	ModePostgres = "postgres"
)

// Config holds all gateway configuration
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Billing  BillingConfig
	Provider ProviderConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Health/metrics server (separate port for probes and scraping)
	HealthPort string
}

// AuthConfig holds session store configuration
type AuthConfig struct {
	Mode          string // static or redis
	RedisURL      string
	SessionPrefix string
}

// BillingConfig holds tier source configuration
type BillingConfig struct {
	Mode        string // static or postgres
	PostgresURL string
	StaticTier  string // tier returned in static mode
}

// ProviderConfig holds model provider configuration
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
	JSON  bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("PROPWISE_HOST", "0.0.0.0"),
			Port:            getEnv("PROPWISE_PORT", "8080"),
			ReadTimeout:     getEnvDuration("PROPWISE_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("PROPWISE_WRITE_TIMEOUT", 120*time.Second),
			IdleTimeout:     getEnvDuration("PROPWISE_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("PROPWISE_SHUTDOWN_TIMEOUT", 30*time.Second),
			HealthPort:      getEnv("PROPWISE_HEALTH_PORT", "9090"),
		},
		Auth: AuthConfig{
			Mode:          getEnv("PROPWISE_AUTH_MODE", ModeRedis),
			RedisURL:      getEnv("PROPWISE_REDIS_URL", "redis://localhost:6379"),
			SessionPrefix: getEnv("PROPWISE_SESSION_PREFIX", "session"),
		},
		Billing: BillingConfig{
			Mode:        getEnv("PROPWISE_BILLING_MODE", ModePostgres),
			PostgresURL: getEnv("PROPWISE_POSTGRES_URL", ""),
			StaticTier:  getEnv("PROPWISE_STATIC_TIER", "premium"),
		},
		Provider: ProviderConfig{
			APIKey:  getEnv("PROPWISE_PROVIDER_API_KEY", ""),
			Model:   getEnv("PROPWISE_PROVIDER_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("PROPWISE_PROVIDER_BASE_URL", ""),
			Timeout: getEnvDuration("PROPWISE_PROVIDER_TIMEOUT", 60*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("PROPWISE_LOG_LEVEL", "info"),
			JSON:  getEnvBool("PROPWISE_LOG_JSON", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Auth.Mode != ModeStatic && c.Auth.Mode != ModeRedis {
		return fmt.Errorf("invalid auth mode %q", c.Auth.Mode)
	}
	if c.Billing.Mode != ModeStatic && c.Billing.Mode != ModePostgres {
		return fmt.Errorf("invalid billing mode %q", c.Billing.Mode)
	}
	if c.Billing.Mode == ModePostgres && c.Billing.PostgresURL == "" {
		return fmt.Errorf("PROPWISE_POSTGRES_URL is required in postgres billing mode")
	}
	if c.Server.Port == c.Server.HealthPort {
		return fmt.Errorf("server and health ports must differ")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
