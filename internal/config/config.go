package config

import (
	"fmt"
	"os"

	"github.com/FairForge/adoptly/internal/intelligence"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server              `yaml:"server"`
	Data   Data                `yaml:"data"`
	Engine intelligence.Config `yaml:"engine"`
}

type Server struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

type Data struct {
	// Seed drives the demo-data generator; a fixed seed makes runs reproducible
	Seed int64 `yaml:"seed"`
}

// Default returns the standard configuration
func Default() *Config {
	return &Config{
		Server: Server{
			Port:     8080,
			LogLevel: "info",
		},
		Data: Data{
			Seed: 42,
		},
		Engine: intelligence.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
