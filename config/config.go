package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all maiden configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// DatasetConfig holds dataset source settings.
type DatasetConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Listen: ":8080"},
		Dataset: DatasetConfig{Path: "titanic.csv", Watch: false},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration from a YAML file, falling back to defaults
// for absent fields, then applies environment overrides. An empty path
// skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets MAIDEN_* environment variables override file values.
func applyEnv(cfg *Config) {
	cfg.Server.Listen = getenv("MAIDEN_LISTEN", cfg.Server.Listen)
	cfg.Dataset.Path = getenv("MAIDEN_DATASET", cfg.Dataset.Path)
	cfg.Logging.Level = getenv("MAIDEN_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getenv("MAIDEN_LOG_FORMAT", cfg.Logging.Format)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
