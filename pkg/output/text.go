package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	for _, result := range report.Results {
		values := make([]string, len(result.Answers))
		for i, a := range result.Answers {
			values[i] = fmt.Sprintf("%d", a.Value)
		}
		if _, err := fmt.Fprintf(w, "Day %d: %s\n", result.Day, strings.Join(values, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for i, result := range report.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := f.formatResult(result, w); err != nil {
			return err
		}
	}

	if f.opts.Verbose {
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Summary: %d puzzles solved, %d lines processed, %d records skipped\n",
			report.Summary.PuzzlesSolved,
			report.Summary.LinesProcessed,
			report.Summary.RecordsSkipped)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatResult(result *puzzle.Result, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "=== Day %d: %s ===\n", result.Day, result.Name); err != nil {
		return err
	}

	for _, a := range result.Answers {
		fmt.Fprintf(w, "Part %d: %s\n", a.Part, a.Summary)
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "  Lines: %d, skipped records: %d\n",
			result.Stats.Lines, result.Stats.RecordsSkipped)
	}

	return nil
}
