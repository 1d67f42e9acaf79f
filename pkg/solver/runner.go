package solver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tduindam/aoc-2022/internal/logging"
	"github.com/tduindam/aoc-2022/pkg/config"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
)

// Runner executes the puzzles listed in a configuration, one after another.
type Runner struct {
	cfg      *config.Config
	registry *Registry
	jobs     []job

	// Options
	dayFilter map[int]bool // nil means all days
	policy    puzzle.Policy
}

type job struct {
	solver Solver
	puzzle *config.PuzzleConfig
}

// RunnerOption configures runner behavior.
type RunnerOption func(*Runner)

// WithDayFilter limits the run to the given days.
func WithDayFilter(days []int) RunnerOption {
	return func(r *Runner) {
		if len(days) > 0 {
			r.dayFilter = make(map[int]bool, len(days))
			for _, d := range days {
				r.dayFilter[d] = true
			}
		}
	}
}

// WithPolicy overrides every configured error policy.
func WithPolicy(p puzzle.Policy) RunnerOption {
	return func(r *Runner) {
		r.policy = p
	}
}

// WithRegistry replaces the default solver registry.
func WithRegistry(reg *Registry) RunnerOption {
	return func(r *Runner) {
		r.registry = reg
	}
}

// NewRunner creates a runner from a validated configuration.
func NewRunner(cfg *config.Config, opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		cfg:      cfg,
		registry: DefaultRegistry(),
	}

	for _, opt := range opts {
		opt(r)
	}

	for i := range cfg.Puzzles {
		p := &cfg.Puzzles[i]

		if r.dayFilter != nil && !r.dayFilter[p.Day] {
			continue
		}

		s, err := r.registry.Lookup(p.Day)
		if err != nil {
			return nil, fmt.Errorf("puzzles[%d]: %w", i, err)
		}
		r.jobs = append(r.jobs, job{solver: s, puzzle: p})
	}

	if len(r.jobs) == 0 {
		return nil, fmt.Errorf("no puzzles to run (check --day filter)")
	}

	return r, nil
}

// RunResult contains the complete output of a run.
type RunResult struct {
	// Results contains the answers of each puzzle, in configuration order.
	Results []*puzzle.Result

	// Metadata provides context about the run.
	Metadata RunMetadata
}

// RunMetadata provides context about a run.
type RunMetadata struct {
	// Inputs lists the input files that were read.
	Inputs []string

	// StartTime is when the run began.
	StartTime time.Time

	// EndTime is when the run completed.
	EndTime time.Time

	// LinesProcessed is the total number of input lines read.
	LinesProcessed int
}

// RecordsSkipped returns the total number of records dropped under PolicySkip.
func (r *RunResult) RecordsSkipped() int {
	total := 0
	for _, res := range r.Results {
		total += res.Stats.RecordsSkipped
	}
	return total
}

// Run solves every configured puzzle in order. The first failing puzzle
// aborts the run.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{
		Results: make([]*puzzle.Result, 0, len(r.jobs)),
		Metadata: RunMetadata{
			StartTime: time.Now(),
		},
	}

	for _, j := range r.jobs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		opts := r.cfg.Options(j.puzzle)
		if r.policy != "" {
			opts.OnError = r.policy
		}
		path := r.cfg.InputPath(j.puzzle)

		res, err := SolveFile(ctx, j.solver, path, opts)
		if err != nil {
			return nil, fmt.Errorf("day %d (%s): %w", j.solver.Day(), j.solver.Name(), err)
		}

		result.Results = append(result.Results, res)
		result.Metadata.Inputs = append(result.Metadata.Inputs, path)
		result.Metadata.LinesProcessed += res.Stats.Lines
	}

	result.Metadata.EndTime = time.Now()

	return result, nil
}

// SolveFile reads path under opts.OnError and runs s over its lines.
// Unreadable lines dropped by the reader are counted in the result's stats.
func SolveFile(ctx context.Context, s Solver, path string, opts puzzle.Options) (*puzzle.Result, error) {
	opts = opts.WithDefaults()
	log := logging.FromContext(ctx).With(zap.Int("day", s.Day()), zap.String("input", path))
	ctx = logging.WithLogger(ctx, log)

	start := time.Now()
	lines, skipped, err := reader.ReadFile(ctx, path, opts.OnError)
	if err != nil {
		return nil, err
	}

	res, err := s.Solve(ctx, lines, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.RecordsSkipped += skipped

	log.Info("Solved puzzle",
		zap.String("name", s.Name()),
		zap.Int("lines", len(lines)),
		zap.Int("skipped", res.Stats.RecordsSkipped),
		zap.Stringer("policy", opts.OnError),
		zap.Duration("duration", time.Since(start)))

	return res, nil
}
