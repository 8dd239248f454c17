// Package config loads application configuration from environment
// variables, with defaults that let the tool run with no configuration
// at all.
package config

import (
	"os"
	"strconv"

	"plotlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	API    APIConfig
	Log    LogConfig
}

// ServerConfig holds web UI server settings
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
	Debug   bool
}

// APIConfig holds the headless JSON API settings
type APIConfig struct {
	Port int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host:    getEnvOrDefault("APP_HOST", "0.0.0.0"),
			Port:    getEnvIntOrDefault("APP_PORT", 8080),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
			Debug:   getEnvBoolOrDefault("APP_DEBUG", false),
		},
		API: APIConfig{
			Port: getEnvIntOrDefault("API_PORT", 8081),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return errors.ConfigInvalid("APP_PORT must be a valid TCP port")
	}
	if config.API.Port <= 0 || config.API.Port > 65535 {
		return errors.ConfigInvalid("API_PORT must be a valid TCP port")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
