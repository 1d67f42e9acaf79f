// Package output provides formatting of puzzle results.
package output

import (
	"time"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

// Report is the complete output of a run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Results contains the answers of each puzzle.
	Results []*puzzle.Result `json:"results"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// PuzzlesSolved is the number of puzzles that produced answers.
	PuzzlesSolved int `json:"puzzles_solved"`

	// LinesProcessed is the total number of input lines read.
	LinesProcessed int `json:"lines_processed"`

	// RecordsSkipped is the total number of records dropped under the skip policy.
	RecordsSkipped int `json:"records_skipped"`
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the configuration file used, if any.
	ConfigFile string `json:"config_file,omitempty"`

	// Inputs lists the input files that were read.
	Inputs []string `json:"inputs"`

	// SolvedAt is when the run completed.
	SolvedAt time.Time `json:"solved_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from run results.
func NewReport(result *solver.RunResult, configFile string) *Report {
	return &Report{
		Results: result.Results,
		Metadata: Metadata{
			ConfigFile: configFile,
			Inputs:     result.Metadata.Inputs,
			SolvedAt:   result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
		Summary: Summary{
			PuzzlesSolved:  len(result.Results),
			LinesProcessed: result.Metadata.LinesProcessed,
			RecordsSkipped: result.RecordsSkipped(),
		},
	}
}

// HasSkips returns true if any record was dropped.
func (r *Report) HasSkips() bool {
	return r.Summary.RecordsSkipped > 0
}
