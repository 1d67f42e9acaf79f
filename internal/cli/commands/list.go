package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tduindam/aoc-2022/pkg/config"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available puzzles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, s := range solver.DefaultRegistry().Solvers() {
				fmt.Fprintf(w, "%2d  %-25s default input: %s\n",
					s.Day(), s.Name(), config.DefaultInputName(s.Day()))
			}
		},
	}
}
