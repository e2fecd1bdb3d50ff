// Package config provides configuration loading and validation for the
// analyzer service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the service configuration. It can be loaded from a JSON file,
// from environment variables, or both; explicit values win over defaults.
type Config struct {
	// Server
	Port         int    `json:"port,omitempty"`          // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	RateLimitRPS int    `json:"ratelimit_rps,omitempty"` // Requests per second per client
	RateBurst    int    `json:"rate_burst,omitempty"`    // Burst capacity per client

	// Analysis
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // Upload size cap for document files
	HistoryLimit   int   `json:"history_limit,omitempty"`    // Default history page size

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults used when neither file nor environment provides a value.
const (
	DefaultPort           = 5001
	DefaultRateLimitRPS   = 10
	DefaultRateBurst      = 20
	DefaultMaxUploadBytes = 10 << 20
	DefaultHistoryLimit   = 10
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables. Unset
// variables leave zero values for ApplyDefaults to fill.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var err error
	if cfg.Port, err = envInt("PORT"); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = envInt("RATELIMIT_RPS"); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = envInt("RATE_BURST"); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = envInt("HISTORY_LIMIT"); err != nil {
		return nil, err
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %v", err)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

func envInt(name string) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return n, nil
}

// ApplyDefaults fills any unset field with the package defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.RateLimitRPS == 0 {
		c.RateLimitRPS = DefaultRateLimitRPS
	}
	if c.RateBurst == 0 {
		c.RateBurst = DefaultRateBurst
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'ratelimit_rps' must be non-negative")
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("config error: 'rate_burst' must be non-negative")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config error: 'history_limit' must be non-negative")
	}
	return nil
}
