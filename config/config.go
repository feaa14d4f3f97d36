package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from a YAML file. Every
// field is optional; the accessors apply defaults so an empty file (or no
// file at all) yields a working in-memory deployment.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	// Engine thresholds treat zero and negative values as "not set" and fall
	// back to the engine defaults (1000 currency units, 6 months, 1200
	// months). A literal zero threshold cannot be configured; the smallest
	// effective setting is a positive value such as 0.01.
	Engine struct {
		InterestThreshold        float64 `yaml:"interest_threshold"`
		TimeSavedThresholdMonths int     `yaml:"time_saved_threshold_months"`
		MaxSimulationMonths      int     `yaml:"max_simulation_months"`
		LegacyPooling            bool    `yaml:"legacy_pooling"`
	} `yaml:"engine"`

	Postgres struct {
		DSN string `yaml:"dsn"`
	} `yaml:"postgres"`

	Redis struct {
		Addr       string `yaml:"addr"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"redis"`
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// DefaultConfig returns an empty configuration; the accessors supply every
// default.
func DefaultConfig() *Config {
	return &Config{}
}

// ServerAddr returns the listen address, defaulting to :8080.
func (c *Config) ServerAddr() string {
	if c.Server.Addr == "" {
		return ":8080"
	}
	return c.Server.Addr
}

// RedisTTL returns the cache entry lifetime, defaulting to one hour.
func (c *Config) RedisTTL() time.Duration {
	if c.Redis.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Redis.TTLMinutes) * time.Minute
}
