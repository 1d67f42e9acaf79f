package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/solver"
)

func createTestReport() *Report {
	start := time.Date(2022, 12, 3, 6, 0, 0, 0, time.UTC)
	return NewReport(&solver.RunResult{
		Results: []*puzzle.Result{
			{
				Day:  1,
				Name: "Calorie Counting",
				Answers: []puzzle.Answer{
					{Part: 1, Value: 24000, Summary: "Elf 3 has most calories (24000)"},
					{Part: 2, Value: 45000, Summary: "Top 3 elves have 45000 calories"},
				},
				Stats: puzzle.Stats{Lines: 14},
			},
			{
				Day:  2,
				Name: "Rock Paper Scissors",
				Answers: []puzzle.Answer{
					{Part: 1, Value: 15, Summary: "Total score following the guide as moves is 15"},
					{Part: 2, Value: 12, Summary: "Total score following the guide as outcomes is 12"},
				},
				Stats: puzzle.Stats{Lines: 4, RecordsSkipped: 1},
			},
		},
		Metadata: solver.RunMetadata{
			Inputs:         []string{"input/day1", "input/day2"},
			StartTime:      start,
			EndTime:        start.Add(1500 * time.Millisecond),
			LinesProcessed: 18,
		},
	}, "aoc.yaml")
}

func TestNewReport(t *testing.T) {
	report := createTestReport()

	want := Summary{PuzzlesSolved: 2, LinesProcessed: 18, RecordsSkipped: 1}
	if diff := cmp.Diff(want, report.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if report.Metadata.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, want 1.5s", report.Metadata.Duration)
	}
	if !report.HasSkips() {
		t.Error("HasSkips() = false, want true")
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"", "text", "json"} {
		f, err := NewFormatter(name, FormatOptions{})
		if err != nil {
			t.Errorf("NewFormatter(%q) error = %v", name, err)
			continue
		}
		if name != "" && f.Name() != name {
			t.Errorf("NewFormatter(%q).Name() = %q", name, f.Name())
		}
	}

	if _, err := NewFormatter("xml", FormatOptions{}); err == nil {
		t.Error("NewFormatter(xml) expected error")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{}).Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `=== Day 1: Calorie Counting ===
Part 1: Elf 3 has most calories (24000)
Part 2: Top 3 elves have 45000 calories

=== Day 2: Rock Paper Scissors ===
Part 1: Total score following the guide as moves is 15
Part 2: Total score following the guide as outcomes is 12
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{Verbose: true}).Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Lines: 4, skipped records: 1",
		"Summary: 2 puzzles solved, 18 lines processed, 1 records skipped",
		"Duration: 1.5s",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{Quiet: true}).Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Day 1: 24000 45000\nDay 2: 15 12\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(FormatOptions{}).Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.PuzzlesSolved != 2 {
		t.Errorf("PuzzlesSolved = %d, want 2", decoded.Summary.PuzzlesSolved)
	}
	if decoded.Metadata.ConfigFile != "aoc.yaml" {
		t.Errorf("ConfigFile = %q", decoded.Metadata.ConfigFile)
	}
	if got := decoded.Results[1].Answers[1].Value; got != 12 {
		t.Errorf("day 2 part 2 = %d, want 12", got)
	}
	if !strings.Contains(buf.String(), `"records_skipped": 1`) {
		t.Errorf("output missing records_skipped:\n%s", buf.String())
	}
}

func TestJSONFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(FormatOptions{Quiet: true}).Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var results []*puzzle.Result
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("quiet output is not a result list: %v", err)
	}
	if len(results) != 2 || results[0].Day != 1 {
		t.Errorf("results = %+v", results)
	}
}
