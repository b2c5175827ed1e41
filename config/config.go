// Package config reads the ltv settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAssetsFile = "LTV_ASSETS_FILE"
	EnvPolicyFile = "LTV_POLICY_FILE"
	EnvLogLevel   = "LTV_LOG_LEVEL"
	EnvLogPretty  = "LTV_LOG_PRETTY"
)

// Config holds application configuration
type Config struct {
	AssetsFile string // empty for the reference dataset
	PolicyFile string // empty for the default policy
	LogLevel   string
	LogPretty  bool
}

// Load reads configuration from environment variables
func Load(envFiles ...string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		AssetsFile: getEnv(EnvAssetsFile, ""),
		PolicyFile: getEnv(EnvPolicyFile, ""),
		LogLevel:   getEnv(EnvLogLevel, "info"),
		LogPretty:  getEnvAsBool(EnvLogPretty, false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s must be one of debug, info, warn or error, got %q", EnvLogLevel, c.LogLevel)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
