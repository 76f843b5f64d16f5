package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	// DataDir holds character.json, achievements.json and taskquest.db.
	DataDir  string `env:"TASKQUEST_DATA"`
	LogMode  string `env:"TASKQUEST_LOG_MODE" envDefault:"dev"`
	LogLevel string `env:"TASKQUEST_LOG_LEVEL" envDefault:"warn"`
	// Taskrc is the Taskwarrior config that receives the UDA definitions.
	Taskrc string `env:"TASKQUEST_TASKRC"`
	// Seed fixes the reward RNG when non-zero.
	Seed int64 `env:"TASKQUEST_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills home-relative defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" || cfg.Taskrc == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("get home dir: %w", err)
		}
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(home, ".taskquest")
		}
		if cfg.Taskrc == "" {
			cfg.Taskrc = filepath.Join(home, ".taskrc")
		}
	}
	return cfg, nil
}
