// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Logging
	Log LogConfig

	// Student notifications
	Notifications NotificationConfig

	// Domain events
	Events EventsConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"UNIVERSITY_APP_NAME" envDefault:"university-records"`
	Environment Environment `env:"UNIVERSITY_ENV"      envDefault:"development"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"UNIVERSITY_LOG_LEVEL" envDefault:"info"`

	// Format is logfmt or json.
	Format string `env:"UNIVERSITY_LOG_FORMAT" envDefault:"logfmt"`
}

// NotificationConfig controls where student notifications go.
type NotificationConfig struct {
	// Stdout prints every notification as it is delivered.
	Stdout bool `env:"UNIVERSITY_NOTIFY_STDOUT" envDefault:"true"`
}

// EventsConfig controls domain event wiring.
type EventsConfig struct {
	// Enabled attaches the audit trail to the event bus.
	Enabled bool `env:"UNIVERSITY_EVENTS_ENABLED" envDefault:"true"`
}

// Load reads configuration from the process environment and validates it.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("UNIVERSITY_ENV must be development, staging or production, got %q", c.App.Environment))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("UNIVERSITY_LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level))
	}

	switch c.Log.Format {
	case "logfmt", "json":
	default:
		errs = append(errs, fmt.Sprintf("UNIVERSITY_LOG_FORMAT must be logfmt or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}
