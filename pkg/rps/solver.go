package rps

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tduindam/aoc-2022/internal/logging"
	"github.com/tduindam/aoc-2022/pkg/aggregate"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
	"github.com/tduindam/aoc-2022/pkg/reader"
)

const (
	// Day is the puzzle day.
	Day = 2

	// Name is the puzzle title.
	Name = "Rock Paper Scissors"
)

// Mode selects how the second column of the strategy guide is read.
type Mode int

const (
	// ModeMoves reads the second column as the move to play.
	ModeMoves Mode = iota + 1

	// ModeOutcomes reads the second column as the outcome to achieve.
	ModeOutcomes
)

func (m Mode) String() string {
	switch m {
	case ModeMoves:
		return "moves"
	case ModeOutcomes:
		return "outcomes"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ScoreMoves scores a line whose second column is the response move.
func ScoreMoves(line string) (uint64, error) {
	a, b, err := ParseMoves(line)
	if err != nil {
		return 0, err
	}
	return RoundScore(a, b), nil
}

// ScoreOutcomes scores a line whose second column is the desired outcome.
func ScoreOutcomes(line string) (uint64, error) {
	a, o, err := ParseOutcome(line)
	if err != nil {
		return 0, err
	}
	return RoundScore(a, Required(a, o)), nil
}

// ScoreLines scores every line in the given mode. Lines that fail to decode
// abort under PolicyAbort and are dropped under PolicySkip.
func ScoreLines(ctx context.Context, lines []reader.Line, mode Mode, policy puzzle.Policy) ([]uint64, int, error) {
	score := ScoreMoves
	if mode == ModeOutcomes {
		score = ScoreOutcomes
	}

	log := logging.FromContext(ctx)
	scores := make([]uint64, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		s, err := score(line.Text)
		if err != nil {
			err = puzzle.AtLine(err, line.Source, line.LineNum)
			if herr := policy.Handle(err); herr != nil {
				return nil, skipped, herr
			}
			skipped++
			log.Debug("Skipping round", zap.Stringer("mode", mode), zap.Error(err))
			continue
		}
		scores = append(scores, s)
	}

	return scores, skipped, nil
}

// Solver implements the rock paper scissors puzzle.
type Solver struct{}

// New creates a rock paper scissors solver.
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

// Solve totals the strategy guide score reading the second column as moves
// (part one) and as outcomes (part two).
func (s *Solver) Solve(ctx context.Context, lines []reader.Line, opts puzzle.Options) (*puzzle.Result, error) {
	opts = opts.WithDefaults()

	moveScores, skippedMoves, err := ScoreLines(ctx, lines, ModeMoves, opts.OnError)
	if err != nil {
		return nil, fmt.Errorf("part 1: %w", err)
	}
	outcomeScores, skippedOutcomes, err := ScoreLines(ctx, lines, ModeOutcomes, opts.OnError)
	if err != nil {
		return nil, fmt.Errorf("part 2: %w", err)
	}

	part1 := aggregate.Sum(moveScores)
	part2 := aggregate.Sum(outcomeScores)

	return &puzzle.Result{
		Day:  Day,
		Name: Name,
		Answers: []puzzle.Answer{
			{
				Part:    1,
				Value:   part1,
				Summary: fmt.Sprintf("Total score following the guide as moves is %d", part1),
			},
			{
				Part:    2,
				Value:   part2,
				Summary: fmt.Sprintf("Total score following the guide as outcomes is %d", part2),
			},
		},
		Stats: puzzle.Stats{
			Lines:          len(lines),
			RecordsSkipped: max(skippedMoves, skippedOutcomes),
		},
	}, nil
}

// Check reports every round that fails to decode, without stopping at the
// first one. Both modes share the second-column alphabet, so a line that
// decodes as moves also decodes as an outcome.
func (s *Solver) Check(ctx context.Context, lines []reader.Line) []error {
	var errs []error
	for _, line := range lines {
		if _, _, err := ParseMoves(line.Text); err != nil {
			errs = append(errs, puzzle.AtLine(err, line.Source, line.LineNum))
		}
	}
	return errs
}
