// Package config loads the application configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"roi-agent/logging"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Logging    logging.Config   `yaml:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeoutSec  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSec int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSec  int    `yaml:"idle_timeout_seconds"`
}

// CacheConfig holds the result cache settings.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	RedisAddr  string `yaml:"redis_addr"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RateLimitConfig holds the per-IP token bucket settings.
type RateLimitConfig struct {
	Capacity      int `yaml:"capacity"`
	RefillSeconds int `yaml:"refill_seconds"`
}

// RefillInterval returns the bucket refill window.
func (c RateLimitConfig) RefillInterval() time.Duration {
	return time.Duration(c.RefillSeconds) * time.Second
}

// ThresholdsConfig holds the recommendation rule thresholds.
type ThresholdsConfig struct {
	// MinROIPct is the ROI below which a project is flagged.
	MinROIPct float64 `yaml:"min_roi_pct"`

	// MaxScenarioSpreadPct flags projects whose best/worst ROI spread
	// exceeds this many percentage points.
	MaxScenarioSpreadPct float64 `yaml:"max_scenario_spread_pct"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeoutSec:  15,
			WriteTimeoutSec: 15,
			IdleTimeoutSec:  60,
		},
		Cache: CacheConfig{
			Enabled:    false,
			RedisAddr:  "localhost:6379",
			TTLSeconds: 3600,
		},
		RateLimit: RateLimitConfig{
			Capacity:      5,
			RefillSeconds: 60,
		},
		Thresholds: ThresholdsConfig{
			MinROIPct:            0,
			MaxScenarioSpreadPct: 50,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Cache.Enabled && c.Cache.RedisAddr == "" {
		return fmt.Errorf("redis address is required when the cache is enabled")
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate limit capacity must be positive")
	}
	if c.RateLimit.RefillSeconds <= 0 {
		return fmt.Errorf("rate limit refill window must be positive")
	}
	return nil
}
