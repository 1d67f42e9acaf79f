package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and applies environment overrides.
// The result is not validated.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()
	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// overrides applied. The result is not validated.
func FromEnvironment() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	return cfg
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Lookup returns the first configured puzzle for day, or nil.
func (c *Config) Lookup(day int) *PuzzleConfig {
	for i := range c.Puzzles {
		if c.Puzzles[i].Day == day {
			return &c.Puzzles[i]
		}
	}
	return nil
}

// Validate checks a configuration for errors and parses error policies.
func Validate(cfg *Config) error {
	if err := ValidateSettings(cfg); err != nil {
		return err
	}

	if len(cfg.Puzzles) == 0 {
		return errors.New("puzzles: at least one puzzle is required")
	}

	for i := range cfg.Puzzles {
		if err := validatePuzzle(&cfg.Puzzles[i]); err != nil {
			return fmt.Errorf("puzzles[%d] (day %d): %w", i, cfg.Puzzles[i].Day, err)
		}
	}

	return nil
}

// ValidateSettings checks the global settings only. It allows an empty
// puzzle list, for single-puzzle invocations.
func ValidateSettings(cfg *Config) error {
	policy, err := puzzle.ParsePolicy(cfg.OnError)
	if err != nil {
		return fmt.Errorf("on_error: %w", err)
	}
	cfg.policy = policy

	if cfg.TopK < 0 {
		return fmt.Errorf("top_k: must be >= 0, got %d", cfg.TopK)
	}

	if cfg.ChunkSize < 1 {
		return fmt.Errorf("chunk_size: must be >= 1, got %d", cfg.ChunkSize)
	}

	return nil
}

func validatePuzzle(p *PuzzleConfig) error {
	if p.Day < MinDay || p.Day > MaxDay {
		return fmt.Errorf("day must be between %d and %d", MinDay, MaxDay)
	}

	if p.OnError != "" {
		policy, err := puzzle.ParsePolicy(p.OnError)
		if err != nil {
			return fmt.Errorf("on_error: %w", err)
		}
		p.policy = policy
	}

	if p.TopK != nil && *p.TopK < 0 {
		return fmt.Errorf("top_k: must be >= 0, got %d", *p.TopK)
	}

	return nil
}
