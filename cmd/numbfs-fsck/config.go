package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "NUMBFS_FSCK"
	appName      = "numbfs-fsck"
)

// Config holds tool defaults. Values come from an optional YAML config
// file, then NUMBFS_FSCK_* environment variables, then command-line
// flags, each layer overriding the previous one.
type Config struct {
	Format   string `envconfig:"NUMBFS_FSCK_FORMAT"    yaml:"format"`
	LogLevel string `envconfig:"NUMBFS_FSCK_LOG_LEVEL" yaml:"logLevel"`
}

func LoadConfig() (*Config, error) {
	c := Config{Format: "text", LogLevel: "warn"}

	configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE")
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf(
				"parsing config file `%s`: %w",
				configFile,
				err,
			)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	return &c, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
