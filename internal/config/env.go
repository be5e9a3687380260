package config

import (
	"os"
	"strconv"
)

// LoadFromEnv applies ADOPTLY_* environment overrides
func LoadFromEnv(cfg *Config) {
	if port := os.Getenv("ADOPTLY_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if logLevel := os.Getenv("ADOPTLY_LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}

	if seed := os.Getenv("ADOPTLY_DATA_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Data.Seed = s
		}
	}
}

// GetEnvOrDefault returns environment variable or default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
