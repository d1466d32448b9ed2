package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/plus3/piecebag/piece"
)

// Config drives the bag stress tool.
type Config struct {
	// Pieces is the number of pieces to spawn. Zero means run for Duration.
	Pieces   int           `yaml:"pieces" env:"PIECEBAG_PIECES"`
	Duration time.Duration `yaml:"duration" env:"PIECEBAG_DURATION"`
	// Seed of zero picks a random seed.
	Seed     uint64        `yaml:"seed" env:"PIECEBAG_SEED"`
	LogLevel string        `yaml:"log_level" env:"PIECEBAG_LOG_LEVEL"`
	Shapes   []piece.Shape `yaml:"shapes"`
	Colors   []piece.Color `yaml:"colors"`
}

// Load reads path when it is non-empty, then applies environment overrides
// and defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Pieces <= 0 && c.Duration <= 0 {
		c.Pieces = 70000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if len(c.Shapes) == 0 {
		c.Shapes = piece.Shapes()
	}
	if len(c.Colors) == 0 {
		c.Colors = piece.Colors()
	}
}
