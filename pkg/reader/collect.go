package reader

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/tduindam/aoc-2022/internal/logging"
	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// IsLineError reports whether err is a failure of a single line, after which
// the source can keep going. Such errors are *puzzle.InputError values that
// carry a line number.
func IsLineError(err error) bool {
	var inErr *puzzle.InputError
	return errors.As(err, &inErr) && inErr.LineNum > 0
}

// ReadLines drains src and returns every readable line in order.
// Under PolicyAbort the first unreadable line aborts; under PolicySkip it is
// dropped and counted in skipped. Terminal source errors always abort.
func ReadLines(ctx context.Context, src Source, policy puzzle.Policy) (lines []Line, skipped int, err error) {
	log := logging.FromContext(ctx)

	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return lines, skipped, nil
		}
		if err != nil {
			if !IsLineError(err) {
				return nil, skipped, err
			}
			if herr := policy.Handle(err); herr != nil {
				return nil, skipped, herr
			}
			skipped++
			log.Debug("Skipping unreadable line", zap.Error(err))
			continue
		}
		lines = append(lines, *line)
	}
}

// ReadFile reads all lines of path under the given policy. Errors already
// carry the path.
func ReadFile(ctx context.Context, path string, policy puzzle.Policy) ([]Line, int, error) {
	src := NewFileSource(path)
	defer src.Close()

	return ReadLines(ctx, src, policy)
}
