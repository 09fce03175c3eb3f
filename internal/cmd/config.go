package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-backed application configuration. Database and
// secret-bearing values come from the environment instead.
type Config struct {
	Sync struct {
		Enabled bool `yaml:"enabled"`
		// PollInterval is a Go duration string, e.g. "30s".
		PollInterval string `yaml:"poll_interval"`
		APIBaseURL   string `yaml:"api_base_url"`
	} `yaml:"sync"`
	NATS struct {
		Enabled    bool   `yaml:"enabled"`
		URL        string `yaml:"url"`
		StreamName string `yaml:"stream_name"`
	} `yaml:"nats"`
}

func defaultConfig() *Config {
	var config Config
	config.Sync.Enabled = true
	config.Sync.PollInterval = "30s"
	config.NATS.Enabled = false
	return &config
}

func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := config.SyncPollInterval(); err != nil {
		return nil, err
	}

	return config, nil
}

// SyncPollInterval parses the configured sync interval.
func (c *Config) SyncPollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Sync.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid sync.poll_interval %q: %w", c.Sync.PollInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("sync.poll_interval must be positive")
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
