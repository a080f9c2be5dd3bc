// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The "current locale" defaults live here too: DEFAULT_LOCALE is the fallback
served when a requested locale has no translation, and SUPPORTED_LOCALES is
the negotiation set for Accept-Language matching. Neither is visible to the
storage core, which always receives locales as explicit parameters.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Polyglot API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Localization defaults
	DefaultLocale    string   `env:"DEFAULT_LOCALE"    envDefault:"en"`
	SupportedLocales []string `env:"SUPPORTED_LOCALES" envDefault:"en" envSeparator:","`

	// Cryptographic keys for editor token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// The fallback locale must itself be negotiable, otherwise localized
	// reads could resolve to a locale the deployment never serves.
	if !cfg.IsSupportedLocale(cfg.DefaultLocale) {
		return nil, fmt.Errorf("config: DEFAULT_LOCALE %q is not in SUPPORTED_LOCALES (%s)",
			cfg.DefaultLocale, strings.Join(cfg.SupportedLocales, ","))
	}

	return cfg, nil
}

// IsSupportedLocale reports whether code is in the configured negotiation set.
// Matching is exact: locale codes are opaque, case-sensitive keys.
func (c *Config) IsSupportedLocale(code string) bool {
	for _, supported := range c.SupportedLocales {
		if supported == code {
			return true
		}
	}
	return false
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
