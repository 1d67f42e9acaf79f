// Package group partitions ordered sequences into groups.
package group

import (
	"github.com/tduindam/aoc-2022/pkg/puzzle"
)

// Split groups items into runs delimited by separator items. Separators are
// not part of any group, and no empty group is ever emitted: consecutive,
// leading and trailing separators are ignored. Order is preserved.
func Split[T any](items []T, isSeparator func(T) bool) [][]T {
	var groups [][]T
	var cur []T

	for _, item := range items {
		if isSeparator(item) {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, item)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}

	return groups
}

// Chunk partitions items into contiguous chunks of exactly n items.
// It returns a *puzzle.ValidationError if n < 1 or len(items) is not a
// multiple of n.
func Chunk[T any](items []T, n int) ([][]T, error) {
	if n < 1 {
		return nil, puzzle.NewValidationError("chunk size must be >= 1, got %d", n)
	}
	if len(items)%n != 0 {
		return nil, puzzle.NewValidationError(
			"%d items cannot be split into chunks of %d (%d left over)",
			len(items), n, len(items)%n)
	}

	chunks := make([][]T, 0, len(items)/n)
	for i := 0; i < len(items); i += n {
		chunks = append(chunks, items[i:i+n:i+n])
	}
	return chunks, nil
}
