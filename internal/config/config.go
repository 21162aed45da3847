// Package config loads and validates environment-driven settings for the
// dashboard client.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Backend
	BackendRoot string        // root of the finance tracker backend
	HTTPTimeout time.Duration // per-request client timeout

	// Local snapshot store (empty path disables it)
	SnapshotDBPath string

	// AMQP mutation events (empty URL disables them)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets export (empty spreadsheet ID disables it)
	GoogleSpreadsheetID string

	LogLevel string
}

func Load() *Config {
	return &Config{
		BackendRoot: getEnv("BACKEND_URL", "http://localhost:8082"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),

		SnapshotDBPath: getEnv("SNAPSHOT_DB_PATH", "./data/fintrack.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fintrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "entity_events"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// BaseURL is the REST root all entity endpoints hang off.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.BackendRoot, "/") + "/api"
}

// TokenURL is the unauthenticated bootstrap endpoint.
func (c *Config) TokenURL() string {
	return strings.TrimRight(c.BackendRoot, "/") + "/auth/token"
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if parsed, err := url.Parse(c.BackendRoot); err != nil {
		errs = append(errs, fmt.Sprintf("invalid backend URL '%s': %v", c.BackendRoot, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid backend URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if c.HTTPTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > time.Minute {
		errs = append(errs, fmt.Sprintf("invalid HTTP timeout %v: must be at most 1 minute", c.HTTPTimeout))
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
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
