package rucksack

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tduindam/aoc-2022/internal/logging"
	"github.com/tduindam/aoc-2022/pkg/aggregate"
	"github.com/tduindam/aoc-2022/pkg/group"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
)

const (
	// Day is the puzzle day.
	Day = 3

	// Name is the puzzle title.
	Name = "Rucksack Reorganization"
)

// Priorities returns the split-half priority of every line. Lines that fail
// validation abort under PolicyAbort and are dropped under PolicySkip.
func Priorities(ctx context.Context, lines []reader.Line, policy puzzle.Policy) ([]uint64, int, error) {
	log := logging.FromContext(ctx)
	out := make([]uint64, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		p, err := SplitHalfPriority(line.Text)
		if err != nil {
			err = puzzle.AtLine(err, line.Source, line.LineNum)
			if herr := policy.Handle(err); herr != nil {
				return nil, skipped, herr
			}
			skipped++
			log.Debug("Skipping rucksack", zap.Error(err))
			continue
		}
		out = append(out, p)
	}

	return out, skipped, nil
}

// BadgePriorities chunks lines into groups of size and returns each group's
// badge priority. A line count that size does not divide always fails; a
// group without exactly one badge follows the policy.
func BadgePriorities(ctx context.Context, lines []reader.Line, size int, policy puzzle.Policy) ([]uint64, int, error) {
	chunks, err := group.Chunk(lines, size)
	if err != nil {
		return nil, 0, err
	}

	log := logging.FromContext(ctx)
	out := make([]uint64, 0, len(chunks))
	skipped := 0

	for _, chunk := range chunks {
		p, err := BadgePriority(reader.Texts(chunk))
		if err != nil {
			err = puzzle.AtLine(err, chunk[0].Source, chunk[0].LineNum)
			if herr := policy.Handle(err); herr != nil {
				return nil, skipped, herr
			}
			skipped++
			log.Debug("Skipping badge group", zap.Error(err))
			continue
		}
		out = append(out, p)
	}

	return out, skipped, nil
}

// Solver implements the rucksack reorganization puzzle.
type Solver struct{}

// New creates a rucksack solver.
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

// Solve sums the priorities of misplaced items (part one) and of group
// badges (part two).
func (s *Solver) Solve(ctx context.Context, lines []reader.Line, opts puzzle.Options) (*puzzle.Result, error) {
	opts = opts.WithDefaults()

	priorities, skippedLines, err := Priorities(ctx, lines, opts.OnError)
	if err != nil {
		return nil, fmt.Errorf("part 1: %w", err)
	}
	badges, skippedGroups, err := BadgePriorities(ctx, lines, opts.ChunkSize, opts.OnError)
	if err != nil {
		return nil, fmt.Errorf("part 2: %w", err)
	}

	part1 := aggregate.Sum(priorities)
	part2 := aggregate.Sum(badges)

	return &puzzle.Result{
		Day:  Day,
		Name: Name,
		Answers: []puzzle.Answer{
			{
				Part:    1,
				Value:   part1,
				Summary: fmt.Sprintf("Sum of misplaced item priorities is %d", part1),
			},
			{
				Part:    2,
				Value:   part2,
				Summary: fmt.Sprintf("Sum of badge priorities is %d", part2),
			},
		},
		Stats: puzzle.Stats{
			Lines:          len(lines),
			RecordsSkipped: skippedLines + skippedGroups,
		},
	}, nil
}

// Check reports every rucksack and badge group that fails validation,
// without stopping at the first one.
func (s *Solver) Check(ctx context.Context, lines []reader.Line) []error {
	var errs []error
	for _, line := range lines {
		if _, err := SplitHalf(line.Text); err != nil {
			errs = append(errs, puzzle.AtLine(err, line.Source, line.LineNum))
		}
	}

	chunks, err := group.Chunk(lines, puzzle.DefaultChunkSize)
	if err != nil {
		return append(errs, err)
	}
	for _, chunk := range chunks {
		if _, err := Badge(reader.Texts(chunk)); err != nil {
			errs = append(errs, puzzle.AtLine(err, chunk[0].Source, chunk[0].LineNum))
		}
	}
	return errs
}
