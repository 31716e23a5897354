// Package config loads server configuration from defaults, an optional
// YAML file, and environment variables.
package config

import (
	"fmt"
	"time"
)

// Config holds the runtime settings for the HTTP server.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string `koanf:"addr"`

	// LogLevel is the zerolog level name (trace..panic).
	LogLevel string `koanf:"log_level"`

	// RequestTimeout bounds a single estimate request.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}
