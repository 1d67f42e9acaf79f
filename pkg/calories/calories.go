// Package calories solves the calorie counting puzzle: inventories are
// blank-line separated groups of integers, one group per elf.
package calories

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tduindam/aoc-2022/internal/logging"
	"github.com/tduindam/aoc-2022/pkg/aggregate"
	"github.com/tduindam/aoc-2022/pkg/group"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
)

const (
	// Day is the puzzle day.
	Day = 1

	// Name is the puzzle title.
	Name = "Calorie Counting"
)

// Solver implements the calorie counting puzzle.
type Solver struct{}

// New creates a calorie counting solver.
func New() *Solver {
	return &Solver{}
}

// Day returns the puzzle day.
func (s *Solver) Day() int {
	return Day
}

// Name returns the puzzle title.
func (s *Solver) Name() string {
	return Name
}

// Solve finds the elf carrying the most calories and the total carried by the
// opts.TopK elves carrying the most.
func (s *Solver) Solve(ctx context.Context, lines []reader.Line, opts puzzle.Options) (*puzzle.Result, error) {
	opts = opts.WithDefaults()

	groups, skipped, err := ParseGroups(ctx, lines, opts.OnError)
	if err != nil {
		return nil, err
	}

	sums := aggregate.SumPerGroup(groups)
	index, most, ok := aggregate.MaxWithIndex(sums)
	if !ok {
		return nil, puzzle.NewValidationError("input contains no calorie groups")
	}
	top := aggregate.TopKSum(sums, opts.TopK)

	logging.FromContext(ctx).Debug("Counted calories",
		zap.Int("elves", len(sums)),
		zap.Int("skipped", skipped))

	return &puzzle.Result{
		Day:  Day,
		Name: Name,
		Answers: []puzzle.Answer{
			{
				Part:    1,
				Value:   most,
				Summary: fmt.Sprintf("Elf %d has most calories (%d)", index, most),
			},
			{
				Part:    2,
				Value:   top,
				Summary: fmt.Sprintf("Top %d elves have %d calories", opts.TopK, top),
			},
		},
		Stats: puzzle.Stats{
			Lines:          len(lines),
			RecordsSkipped: skipped,
		},
	}, nil
}

// ParseCalories parses a single calorie count.
func ParseCalories(text string) (uint64, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &puzzle.InputError{Reason: "invalid calorie count", Token: text}
	}
	return n, nil
}

// ParseGroups splits lines into blank-line separated groups and parses every
// line as a calorie count. Lines that fail to parse abort under PolicyAbort
// and are dropped under PolicySkip; a group left empty by skipping is dropped.
func ParseGroups(ctx context.Context, lines []reader.Line, policy puzzle.Policy) ([][]uint64, int, error) {
	log := logging.FromContext(ctx)
	skipped := 0

	var groups [][]uint64
	for _, g := range group.Split(lines, reader.Line.IsBlank) {
		values := make([]uint64, 0, len(g))
		for _, line := range g {
			n, err := ParseCalories(line.Text)
			if err != nil {
				err = puzzle.AtLine(err, line.Source, line.LineNum)
				if herr := policy.Handle(err); herr != nil {
					return nil, skipped, herr
				}
				skipped++
				log.Debug("Skipping calorie line", zap.Error(err))
				continue
			}
			values = append(values, n)
		}
		if len(values) > 0 {
			groups = append(groups, values)
		}
	}

	return groups, skipped, nil
}

// CountCalories returns the calorie total of each group of lines.
func CountCalories(ctx context.Context, lines []reader.Line, policy puzzle.Policy) ([]uint64, error) {
	groups, _, err := ParseGroups(ctx, lines, policy)
	if err != nil {
		return nil, err
	}
	return aggregate.SumPerGroup(groups), nil
}

// Check reports every calorie line that fails to parse, without stopping at
// the first one.
func (s *Solver) Check(ctx context.Context, lines []reader.Line) []error {
	var errs []error
	groups := 0
	for _, g := range group.Split(lines, reader.Line.IsBlank) {
		groups++
		for _, line := range g {
			if _, err := ParseCalories(line.Text); err != nil {
				errs = append(errs, puzzle.AtLine(err, line.Source, line.LineNum))
			}
		}
	}
	if groups == 0 {
		errs = append(errs, puzzle.NewValidationError("input contains no calorie groups"))
	}
	return errs
}
