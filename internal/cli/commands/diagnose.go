package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

// maxDetails caps the problems listed per check without --verbose.
const maxDetails = 10

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <day> <input-file>",
		Short: "Report every malformed record in an input file",
		Long: `Check an input file against a puzzle without solving it.

Unlike solve, diagnose does not stop at the first problem. It reports:
- Input file existence and accessibility
- Lines that are not valid UTF-8
- Records the puzzle cannot parse or validate

Example:
  aoc diagnose 2 input/day2-1
  aoc diagnose -v 3 input/day3-1  # list every problem`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: must be a number", args[0])
			}
			return runDiagnose(commandContext(cmd), cmd.OutOrStdout(), day, args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "List every problem found")

	return cmd
}

func runDiagnose(ctx context.Context, w io.Writer, day int, inputPath string, opts *DiagnoseOptions) error {
	s, err := solver.DefaultRegistry().Lookup(day)
	if err != nil {
		return err
	}

	results := []DiagnosticResult{}

	// 1. Check input file existence
	result := checkInputExists(inputPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	// 2. Read every line, collecting unreadable ones
	lines, result := checkReadable(ctx, inputPath)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(w, results, opts)
		return nil
	}

	// 3. Check records against the puzzle
	results = append(results, checkRecords(ctx, s, lines))

	printDiagnostics(w, results, opts)
	return nil
}

func checkInputExists(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Input File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Input file not found: %s", path)
		result.Suggests = []string{"Check the file path is correct"}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access input file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "warning"
		result.Message = "Input file is empty"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkReadable(ctx context.Context, path string) ([]reader.Line, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Readable Lines",
	}

	src := reader.NewFileSource(path)
	defer src.Close()

	var lines []reader.Line
	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !reader.IsLineError(err) {
				result.Status = "error"
				result.Message = fmt.Sprintf("Reading failed: %v", err)
				return nil, result
			}
			result.Details = append(result.Details, err.Error())
			continue
		}
		lines = append(lines, *line)
	}

	if len(result.Details) > 0 {
		result.Status = "warning"
		result.Message = fmt.Sprintf("%d line(s) read, %d unreadable", len(lines), len(result.Details))
		result.Suggests = []string{
			"Re-save the file as UTF-8",
			"Use --on-error skip to drop unreadable lines",
		}
		return lines, result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("%d line(s) read", len(lines))
	return lines, result
}

func checkRecords(ctx context.Context, s solver.Solver, lines []reader.Line) DiagnosticResult {
	result := DiagnosticResult{
		Check: fmt.Sprintf("Records: day %d (%s)", s.Day(), s.Name()),
	}

	checker, ok := s.(solver.Checker)
	if !ok {
		result.Status = "warning"
		result.Message = "This puzzle does not support record checks"
		return result
	}

	errs := checker.Check(ctx, lines)
	if len(errs) == 0 {
		result.Status = "ok"
		result.Message = "All records are well-formed"
		return result
	}

	var inputErrs, validationErrs int
	for _, err := range errs {
		switch {
		case errors.Is(err, puzzle.ErrInput):
			inputErrs++
		case errors.Is(err, puzzle.ErrValidation):
			validationErrs++
		}
		result.Details = append(result.Details, err.Error())
	}

	result.Status = "error"
	result.Message = fmt.Sprintf("%d problem(s): %d input, %d validation",
		len(errs), inputErrs, validationErrs)
	result.Suggests = []string{
		"Fix the listed lines, or",
		fmt.Sprintf("run 'aoc solve %d --on-error skip' to drop malformed records", s.Day()),
	}
	return result
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== aoc Diagnostics ===")
	fmt.Fprintln(w)

	errorCount := 0
	warningCount := 0

	for _, r := range results {
		var icon string
		switch r.Status {
		case "ok":
			icon = "[OK]"
		case "warning":
			icon = "[WARN]"
			warningCount++
		case "error":
			icon = "[ERROR]"
			errorCount++
		}

		fmt.Fprintf(w, "%s %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		details := r.Details
		if !opts.Verbose && len(details) > maxDetails {
			details = details[:maxDetails]
		}
		for _, d := range details {
			fmt.Fprintf(w, "    - %s\n", truncate(d, 120))
		}
		if hidden := len(r.Details) - len(details); hidden > 0 {
			fmt.Fprintf(w, "    ... and %d more (use -v to list all)\n", hidden)
		}

		if len(r.Suggests) > 0 && r.Status != "ok" {
			fmt.Fprintln(w, "    Suggestions:")
			for _, s := range r.Suggests {
				fmt.Fprintf(w, "      * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
	if errorCount == 0 && warningCount == 0 {
		fmt.Fprintln(w, "All checks passed!")
	} else {
		fmt.Fprintf(w, "Found %d error(s) and %d warning(s)\n", errorCount, warningCount)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
