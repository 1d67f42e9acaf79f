// Package config provides configuration loading and validation for puzzle runs.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// InputDir is the directory relative puzzle inputs are resolved against.
	InputDir string `yaml:"input_dir"`

	// OnError is the default per-record error policy (abort or skip).
	OnError string `yaml:"on_error,omitempty"`

	// TopK is how many of the largest groups top-k aggregations sum.
	TopK int `yaml:"top_k"`

	// ChunkSize is the line count of a fixed-size group.
	ChunkSize int `yaml:"chunk_size"`

	// Puzzles lists the puzzles to run, in order.
	Puzzles []PuzzleConfig `yaml:"puzzles"`

	// policy is the parsed OnError (populated during validation).
	policy puzzle.Policy
}

// PuzzleConfig defines a single puzzle run.
type PuzzleConfig struct {
	// Day selects the solver.
	Day int `yaml:"day"`

	// Input is the input file. Relative paths are resolved against InputDir.
	// Defaults to "day<N>".
	Input string `yaml:"input,omitempty"`

	// OnError overrides the global error policy for this puzzle.
	OnError string `yaml:"on_error,omitempty"`

	// TopK overrides the global top_k for this puzzle.
	TopK *int `yaml:"top_k,omitempty"`

	Description string `yaml:"description,omitempty"`

	policy puzzle.Policy
}

// Policy returns the global error policy.
func (c *Config) Policy() puzzle.Policy {
	if c.policy == "" {
		return puzzle.DefaultPolicy
	}
	return c.policy
}

// Policy returns the puzzle's effective error policy, or "" when it inherits
// the global one.
func (p *PuzzleConfig) Policy() puzzle.Policy {
	return p.policy
}

// InputPath resolves the input file of a puzzle.
func (c *Config) InputPath(p *PuzzleConfig) string {
	input := p.Input
	if input == "" {
		input = DefaultInputName(p.Day)
	}
	if filepath.IsAbs(input) || c.InputDir == "" {
		return input
	}
	return filepath.Join(c.InputDir, input)
}

// Options returns the solver options for a puzzle, applying overrides.
func (c *Config) Options(p *PuzzleConfig) puzzle.Options {
	opts := puzzle.Options{
		OnError:   c.Policy(),
		TopK:      c.TopK,
		ChunkSize: c.ChunkSize,
	}
	if p.policy != "" {
		opts.OnError = p.policy
	}
	if p.TopK != nil {
		opts.TopK = *p.TopK
	}
	return opts
}

// DefaultInputName is the input file name used when a puzzle names none.
func DefaultInputName(day int) string {
	return fmt.Sprintf("day%d", day)
}
