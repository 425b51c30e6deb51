package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings. It is loaded once in main and passed
// to the components that need it; nothing reads the environment afterwards.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret       string `env:"SECRET_KEY, default=default_secret_key"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	User     string `env:"POSTGRES_USER,     default=default_user"`
	Password string `env:"POSTGRES_PASSWORD, default=default_password"`
	Host     string `env:"POSTGRES_SERVER,   default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	Database string `env:"POSTGRES_DB,       default=Blog"`
}

// DSN renders the connection string for the configured database.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// TokenTTL returns the access-token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
