// Package config provides configuration management for the diffbot CLI.
//
// Settings are read from a .env file in the working directory (if present)
// and then from the process environment. Command-line flags override both.
//
// Recognized variables:
//   - DIFFBOT_TOKEN: API token used when none is given on the command line
//   - DIFFBOT_API_ROOT: API base URL (default: http://api.diffbot.com)
//   - DIFFBOT_API_VERSION: API version (default: 2)
//   - DIFFBOT_TIMEOUT: request timeout, e.g. "30s", "1m", "1d2h" (default: none)
//   - DIFFBOT_TRANSPORT: "resty" or "stdlib" (default: best available)
//   - DIFFBOT_LOG_LEVEL: debug, info, warn or error (default: warn)
//   - DIFFBOT_LOG_ENCODING: console or json (default: console)
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"

	"github.com/tsingmao/diffbot/client"
)

// Config holds the CLI settings.
type Config struct {
	// Token is the Diffbot API token.
	Token string `env:"DIFFBOT_TOKEN"`

	// APIRoot is the API base URL.
	APIRoot string `env:"DIFFBOT_API_ROOT" envDefault:"http://api.diffbot.com"`

	// APIVersion is the "v{N}" endpoint segment.
	APIVersion int `env:"DIFFBOT_API_VERSION" envDefault:"2"`

	// Timeout is the raw DIFFBOT_TIMEOUT value; see ParseTimeout.
	Timeout string `env:"DIFFBOT_TIMEOUT"`

	// Transport names the HTTP backend; empty selects the best available.
	Transport string `env:"DIFFBOT_TRANSPORT"`

	LogLevel    string `env:"DIFFBOT_LOG_LEVEL" envDefault:"warn"`
	LogEncoding string `env:"DIFFBOT_LOG_ENCODING" envDefault:"console"`
}

// Load reads .env (if found) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env") // init env from .env (if found)
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.APIVersion < 1 {
		return fmt.Errorf("invalid api version %d: must be a positive integer", c.APIVersion)
	}
	if c.Transport != "" {
		if err := checkBackend(client.Backend(c.Transport)); err != nil {
			return err
		}
	}
	if _, err := ParseTimeout(c.Timeout); err != nil {
		return err
	}
	return nil
}

// ParseTimeout parses a human duration such as "10s", "1m30s" or "2d".
// A bare number is taken as seconds. The empty string means no timeout.
func ParseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		d, err = str2duration.ParseDuration(s + "s")
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
		}
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", s)
	}
	return d, nil
}

func checkBackend(b client.Backend) error {
	for _, available := range client.Backends() {
		if available == b {
			return nil
		}
	}
	return fmt.Errorf("unknown transport %q: available %v", b, client.Backends())
}
