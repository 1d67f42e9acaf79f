package solver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/tduindam/aoc-2022/pkg/config"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
)

const (
	calorieInput  = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"
	guideInput    = "A Y\nB X\nC Z\n"
	rucksackInput = "vJrwpWtwJgWrhcsFMMfFFhFp\njqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL\nPmmdzqPrVvPwwTWBwg\n" +
		"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn\nttgJtRGJQctTZtZT\nCrZsJsPPZsGzwwsLwLmpwMDw\n"
)

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func answers(res *puzzle.Result) []uint64 {
	out := make([]uint64, len(res.Answers))
	for i, a := range res.Answers {
		out[i] = a.Value
	}
	return out
}

type stubSolver struct {
	day int
}

func (s stubSolver) Day() int     { return s.day }
func (s stubSolver) Name() string { return "stub" }
func (s stubSolver) Solve(_ context.Context, lines []reader.Line, _ puzzle.Options) (*puzzle.Result, error) {
	return &puzzle.Result{Day: s.day, Name: "stub", Stats: puzzle.Stats{Lines: len(lines)}}, nil
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	if diff := cmp.Diff([]int{1, 2, 3}, reg.Days()); diff != "" {
		t.Errorf("Days() mismatch (-want +got):\n%s", diff)
	}

	for _, s := range reg.Solvers() {
		if _, ok := s.(Checker); !ok {
			t.Errorf("day %d solver does not implement Checker", s.Day())
		}
	}

	if _, err := reg.Lookup(9); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("Lookup(9) error = %v, want ErrUnknownDay", err)
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry(stubSolver{day: 4})

	if err := reg.Register(stubSolver{day: 4}); err == nil {
		t.Error("Register() expected error for duplicate day")
	}
	if err := reg.Register(stubSolver{day: 5}); err != nil {
		t.Errorf("Register() error = %v", err)
	}

	s, err := reg.Lookup(5)
	if err != nil {
		t.Fatalf("Lookup(5) error = %v", err)
	}
	if s.Day() != 5 {
		t.Errorf("Lookup(5).Day() = %d", s.Day())
	}
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRegistry() expected panic for duplicate day")
		}
	}()
	NewRegistry(stubSolver{day: 1}, stubSolver{day: 1})
}

func TestRunner_Run(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := writeInputs(t, map[string]string{
		"day1":      calorieInput,
		"guide.txt": guideInput,
		"day3":      rucksackInput,
	})
	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Puzzles = []config.PuzzleConfig{
		{Day: 1},
		{Day: 2, Input: "guide.txt"},
		{Day: 3},
	}
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	result, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := make([][]uint64, len(result.Results))
	for i, res := range result.Results {
		got[i] = answers(res)
	}
	want := [][]uint64{{24000, 45000}, {15, 12}, {157, 70}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}

	if result.Metadata.LinesProcessed != 14+3+6 {
		t.Errorf("LinesProcessed = %d, want 23", result.Metadata.LinesProcessed)
	}
	if len(result.Metadata.Inputs) != 3 {
		t.Errorf("Inputs = %v, want 3 entries", result.Metadata.Inputs)
	}
	if result.Metadata.EndTime.Before(result.Metadata.StartTime) {
		t.Error("EndTime before StartTime")
	}
}

func TestRunner_DayFilter(t *testing.T) {
	dir := writeInputs(t, map[string]string{"day2": guideInput})
	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Puzzles = []config.PuzzleConfig{{Day: 1}, {Day: 2}}

	runner, err := NewRunner(cfg, WithDayFilter([]int{2}))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	result, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Results) != 1 || result.Results[0].Day != 2 {
		t.Errorf("Results = %+v, want only day 2", result.Results)
	}

	if _, err := NewRunner(cfg, WithDayFilter([]int{3})); err == nil {
		t.Error("NewRunner() expected error when filter selects nothing")
	}
}

func TestRunner_UnknownDay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Puzzles = []config.PuzzleConfig{{Day: 7}}

	_, err := NewRunner(cfg)
	if !errors.Is(err, ErrUnknownDay) {
		t.Errorf("NewRunner() error = %v, want ErrUnknownDay", err)
	}

	_, err = NewRunner(cfg, WithRegistry(NewRegistry(stubSolver{day: 7})))
	if err != nil {
		t.Errorf("NewRunner() with custom registry error = %v", err)
	}
}

func TestRunner_PolicyOverride(t *testing.T) {
	dir := writeInputs(t, map[string]string{"day2": "A Y\nQ Q\n\xff\nB X\nC Z\n"})
	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Puzzles = []config.PuzzleConfig{{Day: 2}}
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	_, err = runner.Run(context.Background())
	if err == nil {
		t.Fatal("Run() expected error under abort policy")
	}
	if !strings.Contains(err.Error(), "day 2 (Rock Paper Scissors)") {
		t.Errorf("Run() error = %q, want day prefix", err)
	}

	runner, err = NewRunner(cfg, WithPolicy(puzzle.PolicySkip))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	result, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]uint64{15, 12}, answers(result.Results[0])); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
	// One unreadable line plus one undecodable round.
	if got := result.RecordsSkipped(); got != 2 {
		t.Errorf("RecordsSkipped() = %d, want 2", got)
	}
}

func TestRunner_MissingInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.Puzzles = []config.PuzzleConfig{{Day: 1}}

	runner, err := NewRunner(cfg, WithPolicy(puzzle.PolicySkip))
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	_, err = runner.Run(context.Background())
	if !errors.Is(err, puzzle.ErrInput) {
		t.Errorf("Run() error = %v, want input error", err)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := writeInputs(t, map[string]string{"day2": guideInput})
	cfg := config.DefaultConfig()
	cfg.InputDir = dir
	cfg.Puzzles = []config.PuzzleConfig{{Day: 2}}

	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runner.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
