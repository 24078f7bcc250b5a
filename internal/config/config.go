// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"DEPTSITE_DB_PATH" envDefault:"./data/deptsite.db"`
	DatabaseURL   string `env:"DEPTSITE_DATABASE_URL"` // MySQL DSN; when empty, the local SQLite file is used
	SessionSecret string `env:"DEPTSITE_SESSION_SECRET,required"`
	ServerHost    string `env:"DEPTSITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"DEPTSITE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"DEPTSITE_ENV" envDefault:"development"`
	LogLevel      string `env:"DEPTSITE_LOG_LEVEL" envDefault:"info"`
	StaticDir     string `env:"DEPTSITE_STATIC_DIR" envDefault:"./static"`

	// Admin account created on first boot when the users table is empty
	AdminEmail    string `env:"DEPTSITE_ADMIN_EMAIL" envDefault:"admin@saveetha.edu.in"`
	AdminPassword string `env:"DEPTSITE_ADMIN_PASSWORD" envDefault:"ChangeMe@123"`

	// Demo seeding
	DoSeed   bool   `env:"DEPTSITE_DO_SEED" envDefault:"false"`
	SeedPath string `env:"DEPTSITE_SEED_PATH" envDefault:"./seed/seed.sql"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseMySQL returns true if an external MySQL DSN is configured.
func (c Config) UseMySQL() bool {
	return c.DatabaseURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("DEPTSITE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	cfg.StaticDir = strings.TrimRight(cfg.StaticDir, "/")

	return cfg, nil
}
