package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tduindam/aoc-2022/pkg/config"
	"github.com/tduindam/aoc-2022/pkg/output"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

// RunOptions holds command-line options for the run command.
type RunOptions struct {
	Output  string
	Days    []int
	OnError string
	Verbose bool
	Quiet   bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <config-file>",
		Short: "Solve every puzzle listed in a configuration file",
		Long: `Solve the puzzles listed in the configuration file, in order.

The first puzzle that fails aborts the run. Whether a malformed record fails
a puzzle is decided by on_error (abort or skip), set globally, per puzzle, or
overridden for the whole run with --on-error.

Example:
  aoc run aoc.yaml
  aoc run --day 2 --day 3 aoc.yaml
  aoc run -o json --on-error skip aoc.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntSliceVar(&opts.Days, "day", nil, "Run specific day(s) only (can be repeated)")
	cmd.Flags().StringVar(&opts.OnError, "on-error", "", "Override the error policy of every puzzle (abort|skip)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show input statistics and timing")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Answers only")

	return cmd
}

func runRun(cmd *cobra.Command, args []string, opts *RunOptions) error {
	configPath := args[0]
	ctx := commandContext(cmd)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var runnerOpts []solver.RunnerOption

	if len(opts.Days) > 0 {
		runnerOpts = append(runnerOpts, solver.WithDayFilter(opts.Days))
	}

	if opts.OnError != "" {
		policy, err := puzzle.ParsePolicy(opts.OnError)
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, solver.WithPolicy(policy))
	}

	r, err := solver.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	result, err := r.Run(ctx)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	report := output.NewReport(result, configPath)
	return writeReport(ctx, cmd.OutOrStdout(), report, opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
}

func writeReport(ctx context.Context, w io.Writer, report *output.Report, format string, formatOpts output.FormatOptions) error {
	formatter, err := output.NewFormatter(format, formatOpts)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
