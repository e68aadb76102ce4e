// Package config loads settings from defaults, an optional YAML file and CANTSTOP_*
// environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Board struct {
	Driver string `yaml:"driver" env:"DRIVER"` // memory, sqlite or postgres
	DSN    string `yaml:"dsn" env:"DSN"`       // file path for sqlite, connection string for postgres
}

type Spectator struct {
	Addr string `yaml:"addr" env:"ADDR"` // empty disables the server
}

type Experiment struct {
	Games  int    `yaml:"games" env:"GAMES"`
	OutDir string `yaml:"out_dir" env:"OUT_DIR"`
}

type Config struct {
	LogLevel   string     `yaml:"log_level" env:"LOG_LEVEL"`
	Seed       uint64     `yaml:"seed" env:"SEED"` // 0 seeds from crypto/rand
	Board      Board      `yaml:"board" envPrefix:"BOARD_"`
	Spectator  Spectator  `yaml:"spectator" envPrefix:"SPECTATOR_"`
	Experiment Experiment `yaml:"experiment" envPrefix:"EXPERIMENT_"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Board:    Board{Driver: "memory"},
		Experiment: Experiment{
			Games:  30,
			OutDir: "experiments",
		},
	}
}

// Load builds the configuration. A missing file at path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "CANTSTOP_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
	switch c.Board.Driver {
	case "memory":
	case "sqlite", "postgres":
		if c.Board.DSN == "" {
			return fmt.Errorf("board driver %s needs a dsn", c.Board.Driver)
		}
	default:
		return fmt.Errorf("unknown board driver: %s", c.Board.Driver)
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("experiment games must be positive, got %d", c.Experiment.Games)
	}
	return nil
}
