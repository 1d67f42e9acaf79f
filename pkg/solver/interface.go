// Package solver registers puzzle solvers by day and runs them over input files.
package solver

import (
	"context"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
)

// Solver computes the answers of one puzzle.
// Each puzzle package (calories, rps, rucksack) implements this interface.
type Solver interface {
	// Day returns the puzzle day.
	Day() int

	// Name returns the puzzle title.
	Name() string

	// Solve parses, aggregates and scores the input lines.
	Solve(ctx context.Context, lines []reader.Line, opts puzzle.Options) (*puzzle.Result, error)
}

// Checker is implemented by solvers that can report every malformed record
// of an input instead of stopping at the first.
type Checker interface {
	Check(ctx context.Context, lines []reader.Line) []error
}
