package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tduindam/aoc-2022/pkg/config"
	"github.com/tduindam/aoc-2022/pkg/output"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

// SolveOptions holds command-line options for the solve command.
type SolveOptions struct {
	ConfigFile string
	Output     string
	OnError    string
	TopK       int
	Verbose    bool
	Quiet      bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <day> [input-file]",
		Short: "Solve a single puzzle",
		Long: `Solve one puzzle and print the answer of each part.

Without an input file the input is taken from the configuration: the puzzle's
input entry if --config lists the day, otherwise <input_dir>/day<N>. The input
directory defaults to "input" and can be set with AOC_INPUT_DIR.

Error policy:
  abort  the first malformed record fails the puzzle (default)
  skip   malformed records are dropped and counted

Example:
  aoc solve 1 input/day1-1
  aoc solve 2 --on-error skip input/day2-1
  aoc solve 1 --top-k 5
  aoc solve 3 -o json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file for inputs and defaults")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.OnError, "on-error", "", "Error policy for malformed records (abort|skip)")
	cmd.Flags().IntVar(&opts.TopK, "top-k", puzzle.DefaultTopK, "Number of largest groups summed by top-k answers")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show input statistics and timing")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Answers only")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, opts *SolveOptions) error {
	ctx := commandContext(cmd)

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: must be a number", args[0])
	}

	s, err := solver.DefaultRegistry().Lookup(day)
	if err != nil {
		return err
	}

	cfg, err := loadSolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	pc := cfg.Lookup(day)
	if pc == nil {
		pc = &config.PuzzleConfig{Day: day}
	}

	input := cfg.InputPath(pc)
	if len(args) == 2 {
		input = args[1]
	}

	solveOpts := cfg.Options(pc)
	if opts.OnError != "" {
		policy, err := puzzle.ParsePolicy(opts.OnError)
		if err != nil {
			return err
		}
		solveOpts.OnError = policy
	}
	if cmd.Flags().Changed("top-k") {
		if opts.TopK < 0 {
			return fmt.Errorf("invalid --top-k %d: must be >= 0", opts.TopK)
		}
		solveOpts.TopK = opts.TopK
	}

	start := time.Now()
	res, err := solver.SolveFile(ctx, s, input, solveOpts)
	if err != nil {
		return fmt.Errorf("day %d (%s): %w", s.Day(), s.Name(), err)
	}
	end := time.Now()

	report := output.NewReport(&solver.RunResult{
		Results: []*puzzle.Result{res},
		Metadata: solver.RunMetadata{
			Inputs:         []string{input},
			StartTime:      start,
			EndTime:        end,
			LinesProcessed: res.Stats.Lines,
		},
	}, opts.ConfigFile)

	return writeReport(ctx, cmd.OutOrStdout(), report, opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
}

// loadSolveConfig loads --config when given, otherwise the defaults with
// environment overrides.
func loadSolveConfig(cmd *cobra.Command, opts *SolveOptions) (*config.Config, error) {
	if opts.ConfigFile != "" {
		cfg, err := config.Load(commandContext(cmd), opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg := config.FromEnvironment()
	if err := config.ValidateSettings(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}
