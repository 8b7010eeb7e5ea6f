package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported persisted store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPebble   = "pebble"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		CurrentUserID string `yaml:"current_user_id" env:"SERVER_CURRENT_USER_ID"`
	} `yaml:"server"`

	Database struct {
		Enabled         bool   `yaml:"enabled" env:"DB_ENABLED"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Store struct {
		Backend   string `yaml:"backend" env:"STORE_BACKEND"`
		Path      string `yaml:"path" env:"STORE_PATH"`
		RedisURL  string `yaml:"redis_url" env:"STORE_REDIS_URL"`
		Namespace string `yaml:"namespace" env:"STORE_NAMESPACE"`
	} `yaml:"store"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Simulator struct {
		Interval    string  `yaml:"interval" env:"SIMULATOR_INTERVAL"`
		Probability float64 `yaml:"probability" env:"SIMULATOR_PROBABILITY"`
	} `yaml:"simulator"`

	Chat struct {
		RatePerSecond float64 `yaml:"rate_per_second" env:"CHAT_RATE_PER_SECOND"`
		Burst         int     `yaml:"burst" env:"CHAT_BURST"`
	} `yaml:"chat"`

	Identity struct {
		OTPTTL         string `yaml:"otp_ttl" env:"IDENTITY_OTP_TTL"`
		OTPLength      int    `yaml:"otp_length" env:"IDENTITY_OTP_LENGTH"`
		MaxOTPAttempts int    `yaml:"max_otp_attempts" env:"IDENTITY_MAX_OTP_ATTEMPTS"`
		AdminPhone     string `yaml:"admin_phone" env:"IDENTITY_ADMIN_PHONE"`
	} `yaml:"identity"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Path    string `yaml:"path" env:"METRICS_PATH"`
	} `yaml:"metrics"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory, if present, is loaded into the
// process environment first.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CurrentUserID = "user1"

	config.Database.Enabled = false
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campushub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.Store.Backend = StoreBackendPebble
	config.Store.Path = "data/state"
	config.Store.RedisURL = "redis://localhost:6379/0"
	config.Store.Namespace = "campushub"

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "campushub.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Simulator.Interval = "15s"
	config.Simulator.Probability = 1.0

	config.Chat.RatePerSecond = 1
	config.Chat.Burst = 5

	config.Identity.OTPTTL = "5m"
	config.Identity.OTPLength = 6
	config.Identity.MaxOTPAttempts = 5

	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.CurrentUserID == "" {
		return errors.New("current user id is required")
	}

	switch strings.ToLower(config.Store.Backend) {
	case StoreBackendMemory:
	case StoreBackendPebble:
		if config.Store.Path == "" {
			return errors.New("store path is required for the pebble backend")
		}
	case StoreBackendRedis:
		if config.Store.RedisURL == "" {
			return errors.New("redis url is required for the redis backend")
		}
	case StoreBackendPostgres:
		if !config.Database.Enabled {
			return errors.New("the postgres store backend requires database.enabled")
		}
	default:
		return fmt.Errorf("unsupported store backend %q", config.Store.Backend)
	}

	if config.Database.Enabled {
		if config.Database.Host == "" {
			return errors.New("database host is required")
		}
		if config.JWT.Secret == "" {
			return errors.New("JWT secret is required when the identity database is enabled")
		}
		if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
			return fmt.Errorf("invalid JWT access token expiration format: %w", err)
		}
		if _, err := time.ParseDuration(config.Identity.OTPTTL); err != nil {
			return fmt.Errorf("invalid OTP ttl format: %w", err)
		}
	}

	if d, err := time.ParseDuration(config.Simulator.Interval); err != nil {
		return fmt.Errorf("invalid simulator interval format: %w", err)
	} else if d <= 0 {
		return errors.New("simulator interval must be positive")
	}

	if config.Simulator.Probability < 0 || config.Simulator.Probability > 1 {
		return errors.New("simulator probability must be within [0,1]")
	}

	if config.Chat.RatePerSecond <= 0 || config.Chat.Burst <= 0 {
		return errors.New("chat rate limit must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
