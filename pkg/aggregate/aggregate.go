// Package aggregate provides numeric reductions over groups of values.
package aggregate

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Sum returns the sum of values.
func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// SumPerGroup maps each group to the sum of its values.
func SumPerGroup[T constraints.Integer](groups [][]T) []T {
	sums := make([]T, len(groups))
	for i, g := range groups {
		sums[i] = Sum(g)
	}
	return sums
}

// MaxWithIndex returns the index and value of the largest element.
// For equal maxima the lowest index wins. ok is false for an empty slice.
func MaxWithIndex[T constraints.Integer](values []T) (index int, value T, ok bool) {
	if len(values) == 0 {
		return 0, value, false
	}
	index, value = 0, values[0]
	for i, v := range values[1:] {
		if v > value {
			index, value = i+1, v
		}
	}
	return index, value, true
}

// TopKSum returns the sum of the k largest values. The input is not
// modified. k <= 0 yields 0, and k larger than len(values) sums everything.
func TopKSum[T constraints.Integer](values []T, k int) T {
	if k <= 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	return Sum(sorted[:k])
}
