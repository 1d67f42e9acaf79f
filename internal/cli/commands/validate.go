package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tduindam/aoc-2022/pkg/config"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an aoc configuration file without solving anything.

Checks:
  - YAML syntax
  - Error policies (abort or skip)
  - top_k and chunk_size ranges
  - Puzzle days have a registered solver
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd)
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	registry := solver.DefaultRegistry()
	for i, p := range cfg.Puzzles {
		if _, err := registry.Lookup(p.Day); err != nil {
			return fmt.Errorf("validation failed: puzzles[%d]: %w", i, err)
		}
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Input dir: %s\n", cfg.InputDir)
	fmt.Fprintf(w, "  On error:  %s\n", cfg.Policy())
	fmt.Fprintf(w, "  Puzzles:   %d\n", len(cfg.Puzzles))

	fmt.Fprintf(w, "\nPuzzles:\n")
	var missing []string
	for i := range cfg.Puzzles {
		p := &cfg.Puzzles[i]
		s, _ := registry.Lookup(p.Day)
		path := cfg.InputPath(p)
		fmt.Fprintf(w, "  %d. [day %d] %s (%s, on_error=%s)\n",
			i+1, p.Day, s.Name(), path, cfg.Options(p).OnError)
		if p.Description != "" {
			fmt.Fprintf(w, "     %s\n", p.Description)
		}
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		fmt.Fprintf(w, "\nWarning: %d input file(s) not found:\n", len(missing))
		for _, m := range missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}

	return nil
}
