package reader

import (
	"context"
)

// Source provides an iterator over input lines.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	// A line that cannot be decoded is reported as a *puzzle.InputError
	// with LineNum set; the source stays usable and the following call
	// continues after it. Any other error is terminal.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}
