// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Optional backends:

  - DATABASE_URL unset: the catalog is served from the embedded seed in memory.
  - REDIS_URL unset: remote detail lookups are not cached.
  - REMOTE_API_URL unset: search is disabled and reviews are applied locally only.
  - JWT_PUBLIC_KEY_PATH unset: review-save accepts anonymous requests.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/shelfmark/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Shelfmark API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL"`

	// Remote metadata service (search, details, review forwarding)
	RemoteAPIURL   string        `env:"REMOTE_API_URL"`
	RemoteTimeout  time.Duration `env:"REMOTE_TIMEOUT"   envDefault:"10s"`
	RemoteCacheTTL time.Duration `env:"REMOTE_CACHE_TTL" envDefault:"15m"`

	// Public key used to verify bearer tokens on review-save
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.RemoteTimeout <= 0 {
		return nil, fmt.Errorf("config: REMOTE_TIMEOUT must be positive, got %s", cfg.RemoteTimeout)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether the catalog should be backed by PostgreSQL.
func (c *Config) HasDatabase() bool { return c.DatabaseURL != "" }

// HasCache reports whether remote detail responses should be cached in Redis.
func (c *Config) HasCache() bool { return c.RedisURL != "" }

// HasRemote reports whether a remote metadata service is configured.
func (c *Config) HasRemote() bool { return c.RemoteAPIURL != "" }

// HasAuth reports whether review-save requires a verified bearer token.
func (c *Config) HasAuth() bool { return c.JWTPubKeyPath != "" }

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS as a trimmed slice.
func (c *Config) AllowedOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
