package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"drawseq/seqs"
)

// Config is the demo's file configuration. Keys left out keep their defaults.
type Config struct {
	Lottery seqs.LotteryConfig `yaml:"lottery"`
	Unique  seqs.UniqueConfig  `yaml:"unique"`
}

func DefaultConfig() Config {
	return Config{
		Lottery: seqs.DefaultLotteryConfig(),
		Unique:  seqs.DefaultUniqueConfig(),
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Lottery.Validate(); err != nil {
		return fmt.Errorf("lottery: %w", err)
	}
	if err := c.Unique.Validate(); err != nil {
		return fmt.Errorf("unique: %w", err)
	}
	return nil
}
