package config

import (
	"os"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// Default values for configuration.
const (
	DefaultInputDir = "input"
	MinDay          = 1
	MaxDay          = 25
)

// Environment variable names.
const (
	EnvInputDir = "AOC_INPUT_DIR"
	EnvOnError  = "AOC_ON_ERROR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  DefaultInputDir,
		OnError:   string(puzzle.DefaultPolicy),
		TopK:      puzzle.DefaultTopK,
		ChunkSize: puzzle.DefaultChunkSize,
		Puzzles:   []PuzzleConfig{},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.InputDir = dir
	}
	if policy := os.Getenv(EnvOnError); policy != "" {
		c.OnError = policy
	}
}
